package model

import "time"

// DailyReport is the rollup written alongside each committed batch. It is a
// convenience cache; ad-hoc aggregation of the order records stays the source
// of truth.
type DailyReport struct {
	ID            string
	ReportDate    string
	TotalOrders   int
	CashOrders    int
	VoucherOrders int
	CreatedAt     time.Time
}
