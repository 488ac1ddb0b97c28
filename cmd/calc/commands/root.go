package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calc/internal/app"
	"calc/internal/logging"
)

type options struct {
	home       string
	passphrase string
	remote     string
	verbose    bool
	noHistory  bool

	wire *app.Wire
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the calc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Add numbers and keep a history of the results",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.wire != nil {
				_ = opts.wire.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.home, "home", "", "config dir (default $CALC_HOME or ~/.calc)")
	root.PersistentFlags().StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase to encrypt the history")
	root.PersistentFlags().StringVar(&opts.remote, "remote", "", "calc server base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().BoolVar(&opts.noHistory, "no-history", false, "do not record computations")

	root.AddCommand(addCmd(opts), historyCmd(opts), serveCmd(opts))
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	home := o.home
	if home == "" {
		var err error
		if home, err = app.DefaultHome(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return err
	}

	cfg, err := app.LoadConfig(home)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("passphrase") {
		cfg.Passphrase = o.passphrase
	}
	if flags.Changed("remote") {
		cfg.Remote = o.remote
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("no-history") {
		cfg.NoHistory = o.noHistory
	}

	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	log.Debug("config loaded",
		zap.String("home", cfg.Home),
		zap.Bool("encrypted", cfg.Passphrase != ""),
		zap.String("remote", cfg.Remote),
		zap.Bool("no_history", cfg.NoHistory))

	w, err := app.NewWire(cfg, log)
	if err != nil {
		return fmt.Errorf("wire: %w", err)
	}
	o.wire = w
	return nil
}
