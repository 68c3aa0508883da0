package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kashmir-carpentry/kcbooks/internal/buildinfo"
	"github.com/kashmir-carpentry/kcbooks/internal/config"
	"github.com/kashmir-carpentry/kcbooks/internal/currency"
	"github.com/kashmir-carpentry/kcbooks/internal/logging"
)

// rootOptions carries the persistent flags and the state every subcommand
// shares once PersistentPreRunE has run.
type rootOptions struct {
	configPath string
	verbose    bool
	output     string

	cfg   *config.Config
	log   *zap.Logger
	money *currency.Formatter
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "kcbooks",
		Short:   "Invoice, tax and project figures for a contracting business",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.FileName, "path to kcbooks.yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log calculation details to stderr")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newInvoiceCommand(opts))
	rootCmd.AddCommand(newQuoteCommand(opts))
	rootCmd.AddCommand(newLPOCommand(opts))
	rootCmd.AddCommand(newTaxCommand(opts))
	rootCmd.AddCommand(newProjectCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newPayrollCommand(opts))
	rootCmd.AddCommand(newInventoryCommand(opts))

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.output != outputText && o.output != outputYAML {
		return fmt.Errorf("unknown output format %q (want %s or %s)", o.output, outputText, outputYAML)
	}

	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg

	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}
	log, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	o.log = log.With(zap.String("cmd", cmd.Name()))
	o.money = currency.NewFormatter(cfg.Currency.Code)

	o.log.Debug("loaded config",
		zap.String("path", o.configPath),
		zap.String("business", cfg.Business.Name),
		zap.String("currency", o.money.Code()))
	return nil
}
