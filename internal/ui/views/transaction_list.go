package views

import (
	"fmt"
	"io"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

const TimeLayout = "2006-01-02 15:04:05 MST"

type TransactionListItem struct {
	ID          int64
	Amount      string
	Category    string
	Type        string
	Time        string
	Description string
}

// NewTransactionListItems shapes ledger transactions for display.
func NewTransactionListItems(txs []ledger.Transaction, currency string) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	for _, tx := range txs {
		desc := tx.Description
		if desc == "" {
			desc = "-"
		}
		items = append(items, TransactionListItem{
			ID:          tx.ID,
			Amount:      utils.FormatAmount(tx.Amount, currency),
			Category:    tx.Category,
			Type:        tx.Kind.String(),
			Time:        tx.Timestamp.UTC().Format(TimeLayout),
			Description: desc,
		})
	}
	return items
}

type TransactionListView struct {
	w io.Writer
}

func NewTransactionListView(w io.Writer) *TransactionListView {
	return &TransactionListView{w: w}
}

// RenderEmpty prints the "no data" message shown instead of an empty table.
func (v *TransactionListView) RenderEmpty() {
	pterm.Warning.WithWriter(v.w).Println("No transactions recorded.")
}

func (v *TransactionListView) Render(items []TransactionListItem) error {
	if len(items) == 0 {
		v.RenderEmpty()
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Amount", "Category", "Type", "Time", "Description"},
	}

	for _, item := range items {
		var coloredType, coloredAmount string

		switch item.Type {
		case string(ledger.KindExpense):
			coloredType = pterm.Red(item.Type)
			coloredAmount = pterm.Red(item.Amount)
		case string(ledger.KindIncome):
			coloredType = pterm.Green(item.Type)
			coloredAmount = pterm.Green(item.Amount)
		default:
			coloredType = item.Type
			coloredAmount = item.Amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			coloredAmount,
			item.Category,
			coloredType,
			item.Time,
			item.Description,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).WithWriter(v.w).Render(); err != nil {
		return err
	}
	pterm.Info.WithWriter(v.w).Printf("Total: %d transactions\n", len(items))
	return nil
}
