package cmd

import (
	"fmt"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Amount   string
	Category string
	Desc     string
}

type addRunner struct {
	opts  *rootOptions
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(opts *rootOptions) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [income|expense]",
		Short: "Add a new income or expense transaction",
		Long: `Add a new transaction to your ledger.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode
	tally add

	# Quick mode with flags
	tally add income --amount 2500 --category Salary --desc "Monthly salary"
	tally add expense -a 12.40 -g Food -d "Lunch"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"income", "expense"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				opts:  opts,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "Transaction category")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")

	return cmd
}

func (r *addRunner) Run(args []string) error {
	hasFlags := r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("category") ||
		r.cmd.Flags().Changed("desc")

	var kind ledger.Kind
	var err error
	switch {
	case len(args) == 1:
		kind, err = ledger.ParseKind(args[0])
	case hasFlags:
		err = fmt.Errorf("transaction type is required when using flags: tally add income|expense")
	default:
		kind, err = prompts.PromptTransactionType()
	}
	if err != nil {
		return err
	}

	var details prompts.TransactionDetails
	if hasFlags {
		details, err = r.flagsMode()
	} else {
		details, err = prompts.PromptTransactionDetails()
	}
	if err != nil {
		return err
	}

	ctx := r.cmd.Context()
	a, err := r.opts.App(ctx)
	if err != nil {
		return err
	}

	tx, err := a.Service.Transaction.Record(ctx, kind, details.Amount, details.Category, details.Description)
	if err != nil {
		return err
	}

	out := r.cmd.OutOrStdout()
	pterm.Success.WithWriter(out).Printf("%s added successfully! (ID: %d)\n", tx.Kind, tx.ID)
	printSeparator(out)

	return views.RenderTransactionSummary(out, tx, a.Service.Config.Defaults.Currency)
}

func (r *addRunner) flagsMode() (prompts.TransactionDetails, error) {
	if r.flags.Amount == "" {
		return prompts.TransactionDetails{}, fmt.Errorf("when using flags, --amount is required")
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return prompts.TransactionDetails{}, err
	}

	return prompts.TransactionDetails{
		Amount:      amount,
		Category:    r.flags.Category,
		Description: r.flags.Desc,
	}, nil
}
