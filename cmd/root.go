package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/log"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootOptions carries global flags and the lazily built App shared by
// every subcommand.
type rootOptions struct {
	cfgFile    string
	ledgerPath string

	migrations fs.FS
	cfg        *config.Config
	app        *app.App
	cleanup    func()
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := loadDotEnv(); err != nil {
		os.Exit(errhandler.HandleError(os.Stderr, err))
	}

	opts := &rootOptions{migrations: migrations}
	rootCmd := NewRootCmd(opts)

	err := rootCmd.ExecuteContext(context.Background())
	opts.close()

	os.Exit(errhandler.HandleError(os.Stderr, err))
}

// loadDotEnv applies local overrides from .env (or the given files).
// A missing file is fine; an unreadable or malformed one is not.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func NewRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "tally is a personal finance ledger for income and expenses",
		Long: `tally records income and expense transactions and reports your balance.

Run without a subcommand to open the interactive menu.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &menuRunner{opts: opts, cmd: cmd}
			return runner.Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&opts.ledgerPath, "file", "f", "", "ledger file path (overrides storage.path)")

	rootCmd.AddCommand(NewMenuCmd(opts))
	rootCmd.AddCommand(NewAddCmd(opts))
	rootCmd.AddCommand(NewListCmd(opts))
	rootCmd.AddCommand(NewBalanceCmd(opts))
	rootCmd.AddCommand(NewInfoCmd(opts))

	return rootCmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	appDir, err := config.AppDataDir()
	if err != nil {
		return nil, fmt.Errorf("error getting app dir: %w", err)
	}

	if o.cfgFile == "" {
		if err := config.WriteDefault(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	cfg, err := config.Load(o.cfgFile, appDir)
	if err != nil {
		return nil, err
	}

	if o.ledgerPath != "" {
		path, err := config.ExpandPath(o.ledgerPath)
		if err != nil {
			return nil, fmt.Errorf("invalid ledger path: %w", err)
		}
		cfg.Storage.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o.cfg = cfg
	return cfg, nil
}

// App builds the application on first use so that help and flag errors
// never touch the ledger.
func (o *rootOptions) App(ctx context.Context) (*app.App, error) {
	if o.app != nil {
		return o.app, nil
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := log.New(log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}

	application, cleanup, err := app.NewApp(ctx, cfg, o.migrations, logger)
	if err != nil {
		return nil, err
	}

	o.app = application
	o.cleanup = cleanup
	return application, nil
}

func (o *rootOptions) close() {
	if o.cleanup != nil {
		o.cleanup()
		o.cleanup = nil
	}
}
