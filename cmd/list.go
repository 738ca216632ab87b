package cmd

import (
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	opts *rootOptions
	cmd  *cobra.Command
}

func NewListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List all transactions",
		Long: `List every recorded transaction in the order it was added,
with id, amount, category, type, time and description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{opts: opts, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	a, err := r.opts.App(r.cmd.Context())
	if err != nil {
		return err
	}

	view := views.NewTransactionListView(r.cmd.OutOrStdout())

	txs, ok := a.Service.Transaction.List()
	if !ok {
		view.RenderEmpty()
		return nil
	}

	return view.Render(views.NewTransactionListItems(txs, a.Service.Config.Defaults.Currency))
}
