package store

import (
	"context"

	"github.com/hance08/tally/internal/ledger"
)

// Repository persists the full transaction sequence of a ledger.
// Save always replaces everything previously stored.
type Repository interface {
	Load(ctx context.Context) ([]ledger.Transaction, error)
	Save(ctx context.Context, txs []ledger.Transaction) error
	// Path is the file backing the store.
	Path() string
	Close() error
}
