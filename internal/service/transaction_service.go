package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
)

// Summary is the aggregate view shown by the balance command.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// TransactionService owns the in-memory ledger and writes the full
// sequence back to the repository after every mutation.
type TransactionService struct {
	repo   store.Repository
	ledger *ledger.Ledger
	opts   []ledger.Option
	logger *slog.Logger
}

func NewTransactionService(repo store.Repository, logger *slog.Logger, opts ...ledger.Option) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		repo:   repo,
		ledger: ledger.New(opts...),
		opts:   opts,
		logger: logger,
	}
}

// Load replaces the in-memory ledger with the persisted sequence.
func (ts *TransactionService) Load(ctx context.Context) error {
	txs, err := ts.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	ts.ledger = ledger.FromTransactions(txs, ts.opts...)
	ts.logger.Debug("ledger ready", "transactions", len(txs))
	return nil
}

// Record appends a transaction and saves the whole ledger. When the save
// fails the transaction stays in memory and the error is returned.
func (ts *TransactionService) Record(ctx context.Context, kind ledger.Kind, amount decimal.Decimal, category, description string) (ledger.Transaction, error) {
	if !kind.Valid() {
		return ledger.Transaction{}, fmt.Errorf("invalid transaction type %q", string(kind))
	}

	tx := ts.ledger.Add(amount, category, kind, description)
	ts.logger.Debug("transaction added", "id", tx.ID, "type", tx.Kind, "amount", tx.Amount.String())

	if err := ts.repo.Save(ctx, ts.ledger.Transactions()); err != nil {
		return tx, fmt.Errorf("failed to save transactions: %w", err)
	}
	return tx, nil
}

func (ts *TransactionService) List() ([]ledger.Transaction, bool) {
	return ts.ledger.List()
}

func (ts *TransactionService) Balance() decimal.Decimal {
	return ts.ledger.Balance()
}

func (ts *TransactionService) Summary() Summary {
	return Summary{
		Income:  ts.ledger.TotalIncome(),
		Expense: ts.ledger.TotalExpense(),
		Balance: ts.ledger.Balance(),
		Count:   ts.ledger.Len(),
	}
}
