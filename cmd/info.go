package cmd

import (
	"os"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	opts *rootOptions
	cmd  *cobra.Command
}

func NewInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, ledger path and storage details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{opts: opts, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg, err := r.opts.loadConfig()
	if err != nil {
		return err
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	ledgerExists := false
	if _, err := os.Stat(cfg.Storage.Path); err == nil {
		ledgerExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		StorageDriver:   cfg.Storage.Driver,
		LedgerPath:      cfg.Storage.Path,
		LedgerExists:    ledgerExists,
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      appDataDirOrUnknown(),
	}

	out := r.cmd.OutOrStdout()
	ui.PrintL2Title(out, "System Information")
	return views.RenderSystemInfo(out, items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
