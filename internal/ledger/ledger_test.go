package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	l := New()
	n := 1 + rand.Intn(50)
	for i := 0; i < n; i++ {
		kind := KindIncome
		if rand.Intn(2) == 0 {
			kind = KindExpense
		}
		tx := l.Add(decimal.NewFromInt(int64(rand.Intn(1000))), faker.Word(), kind, faker.Sentence())
		assert.Equal(t, int64(i+1), tx.ID)
	}
	txs, ok := l.List()
	require.True(t, ok)
	require.Len(t, txs, n)
	for i, tx := range txs {
		assert.Equal(t, int64(i+1), tx.ID)
	}
}

func TestAddSetsUTCTimestampFromClock(t *testing.T) {
	local := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	l := New(WithClock(fixedClock(local)))

	tx := l.Add(dec("12.50"), "Books", KindExpense, "")

	assert.True(t, tx.Timestamp.Equal(local))
	assert.Equal(t, time.UTC, tx.Timestamp.Location())
}

func TestAddLeavesPriorTransactionsUntouched(t *testing.T) {
	l := New(WithClock(fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
	first := l.Add(dec("100"), "Salary", KindIncome, "Monthly salary")
	before := l.Transactions()

	l.Add(dec("5"), "Coffee", KindExpense, "")

	after := l.Transactions()
	if diff := cmp.Diff(before[0], after[0]); diff != "" {
		t.Errorf("first transaction changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, first, after[0])
}

func TestAddAcceptsAnyAmount(t *testing.T) {
	l := New()
	l.Add(dec("-20"), "Refund", KindIncome, "")
	l.Add(decimal.Zero, "Nothing", KindExpense, "")
	l.Add(dec("-5"), "Reversal", KindExpense, "")

	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Balance().Equal(dec("-15")), "got %s", l.Balance())
}

func TestBalanceEmpty(t *testing.T) {
	l := New()
	assert.True(t, l.Balance().IsZero())
	assert.True(t, l.TotalIncome().IsZero())
	assert.True(t, l.TotalExpense().IsZero())
}

func TestBalanceScenario(t *testing.T) {
	l := New()
	l.Add(dec("100.0"), "Salary", KindIncome, "Monthly salary")
	l.Add(dec("50.0"), "Groceries", KindExpense, "Weekly groceries")

	assert.Equal(t, "50", l.Balance().String())

	txs, ok := l.List()
	require.True(t, ok)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(1), txs[0].ID)
	assert.Equal(t, "Salary", txs[0].Category)
	assert.Equal(t, int64(2), txs[1].ID)
	assert.Equal(t, KindExpense, txs[1].Kind)
}

func TestBalanceIsOrderIndependent(t *testing.T) {
	type entry struct {
		amount decimal.Decimal
		kind   Kind
	}
	var entries []entry
	income, expense := decimal.Zero, decimal.Zero
	for i := 0; i < 40; i++ {
		amount := decimal.New(int64(rand.Intn(100000)), -2)
		kind := KindIncome
		if i%3 == 0 {
			kind = KindExpense
			expense = expense.Add(amount)
		} else {
			income = income.Add(amount)
		}
		entries = append(entries, entry{amount, kind})
	}

	forward := New()
	for _, e := range entries {
		forward.Add(e.amount, faker.Word(), e.kind, "")
	}
	rand.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	shuffled := New()
	for _, e := range entries {
		shuffled.Add(e.amount, faker.Word(), e.kind, "")
	}

	want := income.Sub(expense)
	assert.True(t, forward.Balance().Equal(want), "forward: want %s, got %s", want, forward.Balance())
	assert.True(t, shuffled.Balance().Equal(want), "shuffled: want %s, got %s", want, shuffled.Balance())
	assert.True(t, forward.TotalIncome().Equal(income))
	assert.True(t, forward.TotalExpense().Equal(expense))
}

func TestListEmptySignalsNoTransactions(t *testing.T) {
	txs, ok := New().List()
	assert.False(t, ok)
	assert.Nil(t, txs)
}

func TestListReturnsCopy(t *testing.T) {
	l := New()
	l.Add(dec("1"), "A", KindIncome, "")
	txs, _ := l.List()
	txs[0].Category = "changed"

	again, _ := l.List()
	assert.Equal(t, "A", again[0].Category)
}

func TestTransactionsNeverNil(t *testing.T) {
	assert.NotNil(t, New().Transactions())
	assert.Empty(t, New().Transactions())
}

func TestFromTransactionsContinuesNumbering(t *testing.T) {
	seed := []Transaction{
		{ID: 1, Amount: dec("10"), Category: "Gift", Kind: KindIncome},
		{ID: 2, Amount: dec("3"), Category: "Snacks", Kind: KindExpense},
	}
	l := FromTransactions(seed)
	seed[0].Category = "mutated"

	tx := l.Add(dec("1"), "Bus", KindExpense, "")
	assert.Equal(t, int64(3), tx.ID)

	txs, _ := l.List()
	assert.Equal(t, "Gift", txs[0].Category)
	assert.True(t, l.Balance().Equal(dec("6")))
}

func TestKindText(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"Income", KindIncome, false},
		{"Expense", KindExpense, false},
		{"income", "", true},
		{"Transfer", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		var k Kind
		err := k.UnmarshalText([]byte(tc.in))
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, k)

		out, err := k.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tc.in, string(out))
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" income ")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, k)

	k, err = ParseKind("EXPENSE")
	require.NoError(t, err)
	assert.Equal(t, KindExpense, k)

	_, err = ParseKind("transfer")
	assert.EqualError(t, err, "unknown transaction type: transfer")
}

func TestSignedPanicsOnInvalidKind(t *testing.T) {
	assert.Panics(t, func() {
		Transaction{ID: 7, Amount: dec("1"), Kind: "Transfer"}.Signed()
	})
}
