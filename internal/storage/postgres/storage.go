package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/talleres-esperanza/comedor/internal/domain/errors"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/domain/repository"
)

// pgxPool is the pool surface the storage needs; pgxpool.Pool and the pgxmock
// pool both satisfy it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool    pgxPool
	timeout time.Duration
	logger  *slog.Logger
}

type personRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type reportRepository struct {
	storage *Storage
}

// New creates storage with schema initialization. Every call carries the
// configured timeout so a hung database surfaces as an error instead of a
// forever-loading screen.
func New(ctx context.Context, dsn string, timeout time.Duration, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, timeout: timeout, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// Factory methods for domain repositories.
func (s *Storage) People() repository.PersonRepository {
	return &personRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Reports() repository.ReportRepository {
	return &reportRepository{storage: s}
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            photo TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            person_id TEXT NOT NULL,
            person_name TEXT NOT NULL,
            person_photo TEXT NOT NULL DEFAULT '',
            fruit_or_soup TEXT,
            juice_or_lemonade TEXT,
            main_dish TEXT,
            observations TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL,
            order_date TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS daily_reports (
            id TEXT PRIMARY KEY,
            report_date TEXT NOT NULL,
            total_orders INTEGER NOT NULL DEFAULT 0,
            cash_orders INTEGER NOT NULL DEFAULT 0,
            voucher_orders INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_people_roster ON people(category, name)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- PersonRepository implementation ---

func (r *personRepository) List(ctx context.Context) ([]model.Person, error) {
	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	const query = `SELECT id, name, photo, category, created_at
                   FROM people ORDER BY category ASC, name ASC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Person
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.PhotoURL, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *personRepository) GetByID(ctx context.Context, id string) (*model.Person, error) {
	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	const query = `SELECT id, name, photo, category, created_at FROM people WHERE id=$1`
	var p model.Person
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PhotoURL, &p.Category, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- OrderRepository implementation ---

func starterValue(s *model.Starter) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func drinkValue(d *model.Drink) *string {
	if d == nil {
		return nil
	}
	v := string(*d)
	return &v
}

func dishValue(m *model.MainDish) *string {
	if m == nil {
		return nil
	}
	v := string(*m)
	return &v
}

func (r *orderRepository) InsertBatch(ctx context.Context, records []model.OrderRecord, report *model.DailyReport) error {
	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
            (id, person_id, person_name, person_photo, fruit_or_soup, juice_or_lemonade, main_dish, observations, payment_method, order_date, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		for _, rec := range records {
			if _, err := tx.Exec(ctx, insertOrder,
				rec.ID, rec.PersonID, rec.PersonName, rec.PersonPhoto,
				starterValue(rec.Starter), drinkValue(rec.Drink), dishValue(rec.MainDish),
				rec.Note, string(rec.PaymentMethod), rec.OrderDate, rec.CreatedAt,
			); err != nil {
				return err
			}
		}

		if report != nil {
			const insertReport = `INSERT INTO daily_reports
                (id, report_date, total_orders, cash_orders, voucher_orders, created_at)
                VALUES ($1, $2, $3, $4, $5, $6)`
			if _, err := tx.Exec(ctx, insertReport,
				report.ID, report.ReportDate, report.TotalOrders, report.CashOrders, report.VoucherOrders, report.CreatedAt,
			); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.OrderRecord, error) {
	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	const query = `SELECT id, person_id, person_name, person_photo, fruit_or_soup, juice_or_lemonade, main_dish, observations, payment_method, order_date, created_at
                   FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderRecord
	for rows.Next() {
		var rec model.OrderRecord
		var starter, drink, dish *string
		var payment string
		if err := rows.Scan(&rec.ID, &rec.PersonID, &rec.PersonName, &rec.PersonPhoto,
			&starter, &drink, &dish, &rec.Note, &payment, &rec.OrderDate, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if starter != nil {
			v := model.Starter(*starter)
			rec.Starter = &v
		}
		if drink != nil {
			v := model.Drink(*drink)
			rec.Drink = &v
		}
		if dish != nil {
			v := model.MainDish(*dish)
			rec.MainDish = &v
		}
		rec.PaymentMethod = model.PaymentMethod(payment)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ReportRepository implementation ---

func (r *reportRepository) ListAll(ctx context.Context) ([]model.DailyReport, error) {
	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	const query = `SELECT id, report_date, total_orders, cash_orders, voucher_orders, created_at
                   FROM daily_reports ORDER BY report_date DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DailyReport
	for rows.Next() {
		var rep model.DailyReport
		if err := rows.Scan(&rep.ID, &rep.ReportDate, &rep.TotalOrders, &rep.CashOrders, &rep.VoucherOrders, &rep.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
