package menu

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func newService(t *testing.T) (*service.TransactionService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.json")
	clock := ledger.WithClock(func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) })
	svc := service.NewTransactionService(store.NewJSONStore(path, log.Discard()), log.Discard(), clock)
	require.NoError(t, svc.Load(context.Background()))
	return svc, path
}

func run(t *testing.T, svc Ledger, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(svc, strings.NewReader(input), &out, WithLogger(log.Discard())).Run(context.Background())
	return out.String(), err
}

func TestMenuScenario(t *testing.T) {
	svc, path := newService(t)
	input := strings.Join([]string{
		"1", "100.0", "Salary", "Monthly salary",
		"2", "50.0", "Groceries", "Weekly groceries",
		"3", "4", "5",
	}, "\n") + "\n"

	out, err := run(t, svc, input)
	require.NoError(t, err)

	assert.Contains(t, out, "Personal Finance Tracker")
	assert.Contains(t, out, "Income added successfully.")
	assert.Contains(t, out, "Expense added successfully.")
	assert.Contains(t, out, "Monthly salary")
	assert.Contains(t, out, "Weekly groceries")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "2024-06-01 09:00:00 UTC")
	assert.Contains(t, out, "Your total balance is : 50.00")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Exiting..."))

	txs, ok := svc.List()
	require.True(t, ok)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(1), txs[0].ID)
	assert.Equal(t, int64(2), txs[1].ID)

	persisted, err := store.NewJSONStore(path, log.Discard()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestMenuListEmpty(t *testing.T) {
	svc, _ := newService(t)
	out, err := run(t, svc, "3\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions recorded.")
	assert.NotContains(t, out, "Total:")
}

func TestMenuBalanceEmpty(t *testing.T) {
	svc, _ := newService(t)
	out, err := run(t, svc, "4\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Your total balance is : 0.00")
}

func TestMenuInvalidChoice(t *testing.T) {
	svc, _ := newService(t)
	out, err := run(t, svc, "9\nhello\n\n5\n")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Invalid choice, please try again."))
}

func TestMenuRepromptsBadAmount(t *testing.T) {
	svc, _ := newService(t)
	out, err := run(t, svc, "2\nabc\n12.5\nFood\n\n4\n5\n")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Please enter a valid number."))
	assert.Contains(t, out, "Your total balance is : -12.50")

	txs, ok := svc.List()
	require.True(t, ok)
	assert.Equal(t, "Food", txs[0].Category)
	assert.Equal(t, "", txs[0].Description)
}

func TestMenuEndOfInput(t *testing.T) {
	svc, _ := newService(t)
	out, err := run(t, svc, "4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}

func TestMenuEndOfInputWhileAdding(t *testing.T) {
	svc, _ := newService(t)
	_, err := run(t, svc, "1\n10\n")
	require.NoError(t, err)

	_, ok := svc.List()
	assert.False(t, ok)
}

type failingRepo struct{}

func (failingRepo) Load(context.Context) ([]ledger.Transaction, error) { return nil, nil }
func (failingRepo) Save(context.Context, []ledger.Transaction) error {
	return errors.New("read-only file system")
}
func (failingRepo) Path() string { return "" }

func (failingRepo) Close() error { return nil }

func TestMenuSaveFailureStops(t *testing.T) {
	svc := service.NewTransactionService(failingRepo{}, log.Discard())
	out, err := run(t, svc, "1\n5\nTip\n\n4\n5\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only file system")
	assert.NotContains(t, out, "added successfully")
	assert.NotContains(t, out, "Your total balance")
}

func TestMenuCanceledContext(t *testing.T) {
	svc, _ := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(svc, strings.NewReader("4\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
