package views

import (
	"fmt"
	"io"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderBalance prints the single balance line used by the menu.
func RenderBalance(w io.Writer, balance decimal.Decimal, currency string) {
	pterm.Fprintln(w, fmt.Sprintf("Your total balance is : %s", colorBySign(balance, utils.FormatAmount(balance, currency))))
}

func RenderSummary(w io.Writer, sum service.Summary, currency string) error {
	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Transactions", fmt.Sprintf("%d", sum.Count)},
		{"Total Income", pterm.Green(utils.FormatAmount(sum.Income, currency))},
		{"Total Expense", pterm.Red(utils.FormatAmount(sum.Expense, currency))},
		{"Balance", colorBySign(sum.Balance, utils.FormatAmount(sum.Balance, currency))},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).WithWriter(w).Render()
}

// RenderTransactionSummary confirms a freshly recorded transaction.
func RenderTransactionSummary(w io.Writer, tx ledger.Transaction, currency string) error {
	desc := tx.Description
	if desc == "" {
		desc = "-"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Type", tx.Kind.String()},
		{"Amount", utils.FormatAmount(tx.Amount, currency)},
		{"Category", tx.Category},
		{"Time", tx.Timestamp.UTC().Format(TimeLayout)},
		{"Description", desc},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).WithWriter(w).Render()
}

func colorBySign(amount decimal.Decimal, s string) string {
	if amount.IsNegative() {
		return pterm.Red(s)
	}
	return pterm.Green(s)
}
