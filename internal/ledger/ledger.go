// Package ledger holds the in-memory sequence of income and expense
// transactions and the aggregates derived from it.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ledger struct {
	transactions []Transaction
	now          func() time.Time
}

type Option func(*Ledger)

// WithClock replaces time.Now as the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromTransactions returns a ledger seeded with previously persisted
// transactions, kept in the given order.
func FromTransactions(txs []Transaction, opts ...Option) *Ledger {
	l := New(opts...)
	l.transactions = append(make([]Transaction, 0, len(txs)), txs...)
	return l
}

// Add appends a new transaction. The id is the current length plus one;
// ids are never reused or renumbered. Amounts are accepted as given.
func (l *Ledger) Add(amount decimal.Decimal, category string, kind Kind, description string) Transaction {
	tx := Transaction{
		ID:          int64(len(l.transactions)) + 1,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Timestamp:   l.now().UTC(),
		Description: description,
	}
	l.transactions = append(l.transactions, tx)
	return tx
}

func (l *Ledger) Len() int {
	return len(l.transactions)
}

// TotalIncome sums the amounts of all income transactions.
func (l *Ledger) TotalIncome() decimal.Decimal {
	return l.sum(KindIncome)
}

// TotalExpense sums the amounts of all expense transactions.
func (l *Ledger) TotalExpense() decimal.Decimal {
	return l.sum(KindExpense)
}

// Balance is total income minus total expense. Zero for an empty ledger.
func (l *Ledger) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.transactions {
		total = total.Add(tx.Signed())
	}
	return total
}

func (l *Ledger) sum(kind Kind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.transactions {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// List returns the transactions in insertion order. ok is false when the
// ledger has no transactions at all.
func (l *Ledger) List() (txs []Transaction, ok bool) {
	if len(l.transactions) == 0 {
		return nil, false
	}
	return l.Transactions(), true
}

// Transactions returns a copy of the full sequence, never nil.
func (l *Ledger) Transactions() []Transaction {
	return append(make([]Transaction, 0, len(l.transactions)), l.transactions...)
}
