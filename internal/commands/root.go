package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juev/hledger-viewer/internal/buildinfo"
	"github.com/juev/hledger-viewer/internal/cli"
	"github.com/juev/hledger-viewer/internal/config"
	"github.com/juev/hledger-viewer/internal/service"
)

type rootFlags struct {
	configPath string
	journal    string
	hledger    string
	timeout    time.Duration
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "hledger-viewer",
		Short:   "Decode and serve hledger reports for the viewer shell",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&flags.journal, "file", "f", "", "journal file (default: config, then LEDGER_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.hledger, "hledger", "", "hledger binary path")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "hledger invocation timeout")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(newServeCommand(flags))
	rootCmd.AddCommand(newReportCommand(flags))
	rootCmd.AddCommand(newAccountsCommand(flags))

	return rootCmd
}

type env struct {
	svc     *service.Service
	journal string
	logger  *zap.Logger
}

// buildEnv resolves config file and flag overrides into a ready service.
func buildEnv(flags *rootFlags) (*env, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.hledger != "" {
		cfg.HLedgerPath = flags.hledger
	}
	timeout := cfg.Timeout()
	if flags.timeout > 0 {
		timeout = flags.timeout
	}
	journal := cfg.JournalFile()
	if flags.journal != "" {
		journal = flags.journal
	}

	logger := zap.NewNop()
	if flags.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	client := cli.NewClient(cfg.HLedgerPath, timeout)
	return &env{
		svc:     service.New(client, logger),
		journal: journal,
		logger:  logger,
	}, nil
}
