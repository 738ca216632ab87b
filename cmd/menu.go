package cmd

import (
	"github.com/hance08/tally/internal/menu"
	"github.com/spf13/cobra"
)

type menuRunner struct {
	opts *rootOptions
	cmd  *cobra.Command
}

func NewMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Long: `Open the numbered interactive menu.

	1. Add Income
	2. Add Expense
	3. View Transactions
	4. View Total Balance
	5. Exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &menuRunner{opts: opts, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *menuRunner) Run() error {
	ctx := r.cmd.Context()
	a, err := r.opts.App(ctx)
	if err != nil {
		return err
	}

	m := menu.New(
		a.Service.Transaction,
		r.cmd.InOrStdin(),
		r.cmd.OutOrStdout(),
		menu.WithCurrency(a.Service.Config.Defaults.Currency),
		menu.WithLogger(a.Logger),
	)
	return m.Run(ctx)
}
