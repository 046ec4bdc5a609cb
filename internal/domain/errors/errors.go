package errors

import "errors"

var (
	// ErrNotFound signals a missing person or record.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable signals the persistence gateway could not be reached.
	// Callers substitute fallback data for reads and surface the failure for
	// writes; it must never be swallowed silently.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrEmptyBatch signals an attempt to summarize or commit with no drafts.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrIncompleteBatch signals the roster still has people without drafts.
	ErrIncompleteBatch = errors.New("batch incomplete")
	// ErrMalformedDraft signals unparseable scratch contents; the session
	// layer fails closed to an empty store when it sees this.
	ErrMalformedDraft = errors.New("malformed draft data")
)
