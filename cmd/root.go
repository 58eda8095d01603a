package cmd

import (
	"fmt"
	"io"

	"movieShelf/config"
	"movieShelf/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	plain   bool

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "movieShelf",
	Short: "Keep a catalog of movies from the terminal",
	Long: `movieShelf is an interactive catalog manager for movies.

Features:
- Add movies and update any field
- Import and export catalogs as CSV files
- Full-screen terminal UI, or a plain line mode for pipes and scripts

Examples:
  movieShelf
  movieShelf --plain < answers.txt
  movieShelf show movies.csv --json
  movieShelf config init`,
	Version:            "1.0.0",
	SilenceUsage:       true,
	PersistentPreRunE:  initConfig,
	PersistentPostRunE: closeLog,
	RunE:               runSession,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.movieShelf.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "line-oriented prompts without the full-screen UI")
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded

	logCloser, err = logger.InitLogger(logger.LoggerConfig{
		LogLevel:     cfg.LogLevel,
		LogFile:      cfg.LogFile,
		LogFileSize:  cfg.LogMaxSizeMB,
		LogFileCount: cfg.LogMaxBackups,
		Verbose:      verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}

	logrus.WithFields(logrus.Fields{"command": cmd.Name(), "log_file": cfg.LogFile}).Debug("starting")
	return nil
}

func closeLog(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}
