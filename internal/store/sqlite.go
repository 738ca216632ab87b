package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hance08/tally/internal/ledger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLiteStore keeps the ledger in a single table, one row per transaction,
// ordered by insertion.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}
	logger.Debug("opened sqlite ledger", "path", dbPath)

	return &SQLiteStore{db: db, path: dbPath, logger: logger}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) execTx(ctx context.Context, fn func(DBTX) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start database transaction : %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, transaction_type, time_stamp, description
		FROM transactions
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := []ledger.Transaction{}
	for rows.Next() {
		var (
			tx        ledger.Transaction
			amount    string
			kind      string
			timestamp string
		)
		if err := rows.Scan(&tx.ID, &amount, &tx.Category, &kind, &timestamp, &tx.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("%w: transaction %d amount %q: %v", ErrMalformedLedger, tx.ID, amount, err)
		}
		if err := tx.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %v", ErrMalformedLedger, tx.ID, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d timestamp %q: %v", ErrMalformedLedger, tx.ID, timestamp, err)
		}
		tx.Timestamp = ts.UTC()

		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	s.logger.Debug("loaded ledger", "path", s.path, "count", len(txs))
	return txs, nil
}

// Save replaces every stored row with txs inside one database transaction.
func (s *SQLiteStore) Save(ctx context.Context, txs []ledger.Transaction) error {
	err := s.execTx(ctx, func(db DBTX) error {
		if _, err := db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
			return fmt.Errorf("failed to clear transactions : %w", err)
		}

		stmt, err := db.PrepareContext(ctx, `
			INSERT INTO transactions (id, amount, category, transaction_type, time_stamp, description)
			VALUES (?, ?, ?, ?, ?, ?);
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare transaction SQL : %w", err)
		}
		defer stmt.Close()

		for _, tx := range txs {
			_, err := stmt.ExecContext(ctx,
				tx.ID,
				tx.Amount.String(),
				tx.Category,
				string(tx.Kind),
				tx.Timestamp.UTC().Format(time.RFC3339Nano),
				tx.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to insert transaction %d : %w", tx.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("saved ledger", "path", s.path, "count", len(txs))
	return nil
}
