package prompts

import (
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/utils"
	"github.com/shopspring/decimal"
)

// TransactionDetails is what the user types for a new transaction.
type TransactionDetails struct {
	Amount      decimal.Decimal
	Category    string
	Description string
}

// PromptTransactionType prompts for income or expense
func PromptTransactionType() (ledger.Kind, error) {
	options := []string{string(ledger.KindIncome), string(ledger.KindExpense)}

	selected, err := PromptSelect("Choose the transaction type:", options, string(ledger.KindExpense))
	if err != nil {
		return "", err
	}

	return ledger.ParseKind(selected)
}

// PromptTransactionDetails asks for amount, category and description in
// that order.
func PromptTransactionDetails() (TransactionDetails, error) {
	var details TransactionDetails

	amountStr, err := PromptAmount(
		"Amount:",
		"Enter the amount, no need currency symbol (e.g. 150 or 150.50)",
		func(s string) error {
			_, err := utils.ParseAmount(s)
			return err
		},
	)
	if err != nil {
		return details, err
	}
	if details.Amount, err = utils.ParseAmount(amountStr); err != nil {
		return details, err
	}

	if details.Category, err = PromptInput("Category:"); err != nil {
		return details, err
	}

	if details.Description, err = PromptDescription("Description (optional):"); err != nil {
		return details, err
	}

	return details, nil
}
