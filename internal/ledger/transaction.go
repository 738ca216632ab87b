package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as increasing or decreasing the balance.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid transaction type %q", string(k))
	}
	return []byte(k), nil
}

func (k *Kind) UnmarshalText(data []byte) error {
	v := Kind(data)
	if !v.Valid() {
		return fmt.Errorf("invalid transaction type %q", string(data))
	}
	*k = v
	return nil
}

// ParseKind accepts the kind name in any letter case.
func ParseKind(s string) (Kind, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(v, string(KindIncome)):
		return KindIncome, nil
	case strings.EqualFold(v, string(KindExpense)):
		return KindExpense, nil
	}
	return "", fmt.Errorf("unknown transaction type: %s", s)
}

// Transaction is one recorded financial event. Values are never modified
// after the ledger creates them.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Category    string
	Kind        Kind
	Timestamp   time.Time
	Description string
}

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Kind {
	case KindIncome:
		return t.Amount
	case KindExpense:
		return t.Amount.Neg()
	}
	panic(fmt.Sprintf("ledger: transaction %d has invalid kind %q", t.ID, string(t.Kind)))
}
