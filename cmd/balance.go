package cmd

import (
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	opts *rootOptions
	cmd  *cobra.Command
}

func NewBalanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "balance",
		Aliases: []string{"bal"},
		Short:   "Show total income, total expense and balance",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &balanceRunner{opts: opts, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *balanceRunner) Run() error {
	a, err := r.opts.App(r.cmd.Context())
	if err != nil {
		return err
	}

	out := r.cmd.OutOrStdout()
	currency := a.Service.Config.Defaults.Currency
	sum := a.Service.Transaction.Summary()

	ui.PrintL2Title(out, "Balance")
	if err := views.RenderSummary(out, sum, currency); err != nil {
		return err
	}
	views.RenderBalance(out, sum.Balance, currency)
	return nil
}
