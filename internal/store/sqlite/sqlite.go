// Package sqlite provides a store.Store backed by an in-memory SQLite
// database. Data lives only as long as the Store is open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"bills/internal/core"
	applog "bills/internal/log"
	"bills/internal/store"
)

var _ store.Store = (*Store)(nil)

// DefaultDSN names a shared-cache in-memory database.
const DefaultDSN = "file:bills?mode=memory&cache=shared"

var ErrNotInMemory = errors.New("sqlite DSN must use mode=memory and cache=shared")

type Store struct {
	db     *sql.DB
	logger *applog.Logger
}

// IsMemoryDSN reports whether dsn names a shared-cache in-memory database.
func IsMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, "mode=memory") && strings.Contains(dsn, "cache=shared")
}

// New opens the database and applies migrations. A nil logger discards.
func New(ctx context.Context, dsn string, logger *applog.Logger) (*Store, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	logger = logger.WithComponent(applog.ComponentStorage)

	if !IsMemoryDSN(dsn) {
		return nil, fmt.Errorf("%w: %q", ErrNotInMemory, dsn)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The in-memory database is dropped when its last connection closes.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dsn)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.InfoContext(ctx, "SQLite store opened", applog.FieldSchemaVersion, version)

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	s.logger.Debug("SQLite store closed")
	return s.db.Close()
}

// Add upserts the bill; every column is replaced. The amount is kept as
// text so NaN and infinities survive.
func (s *Store) Add(ctx context.Context, b core.Bill) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bills (name, amount) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET amount = excluded.amount`,
		b.Name, core.FormatAmount(b.Amount))
	if err != nil {
		return fmt.Errorf("add bill %q: %w", b.Name, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]core.Bill, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, amount FROM bills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	out := []core.Bill{}
	for rows.Next() {
		var name, amount string
		if err := rows.Scan(&name, &amount); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("decode amount of bill %q: %w", name, err)
		}
		out = append(out, core.Bill{Name: name, Amount: v})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}
	return out, nil
}

func (s *Store) Remove(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bills WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("remove bill %q: %w", name, err)
	}
	return affected(res)
}

func (s *Store) Update(ctx context.Context, name string, amount float64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE bills SET amount = ? WHERE name = ?`, core.FormatAmount(amount), name)
	if err != nil {
		return false, fmt.Errorf("update bill %q: %w", name, err)
	}
	return affected(res)
}

func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bills`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bills: %w", err)
	}
	return n, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
