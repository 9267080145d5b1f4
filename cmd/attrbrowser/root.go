package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"attribute-browser/internal/config"
	"attribute-browser/internal/loader"
	"attribute-browser/internal/logging"
)

var (
	cfg    config.Config
	logger = zap.NewNop()

	dataSource   string
	logLevel     string
	fetchTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "attrbrowser",
	Short: "Search and inspect a static attribute document",
	Long: `attrbrowser loads a JSON document of attribute records once, normalizes it,
and lets you search, filter and inspect the records from a web page, a
terminal UI, or the command line.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var failure *loader.DataLoadFailure
		if errors.As(err, &failure) {
			fmt.Fprintln(os.Stderr, failure.Message())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataSource, "data", "", "URL or path of the attribute document (env "+config.EnvData+")")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env "+config.EnvLogLevel+")")
	flags.DurationVar(&fetchTimeout, "fetch-timeout", 0, "timeout for fetching the document (env "+config.EnvFetchTimeout+")")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(queryCmd)
}

// initConfig resolves settings from .env, the environment and flags, in
// increasing precedence, and builds the logger.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataSource = dataSource
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("fetch-timeout") {
		cfg.FetchTimeout = fetchTimeout
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr = serveAddr
	}

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	return nil
}
