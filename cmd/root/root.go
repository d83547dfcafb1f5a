// Package root contains the root command for the application
package root

import (
	"os"

	"iltracker/internal/common"
	"iltracker/internal/config"
	"iltracker/internal/logging"
	"iltracker/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	OutDir   string
	Keywords string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, set before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "iltracker",
		Short: "A CLI tool to build MLB injured-list datasets from the public stats API.",
		Long: `iltracker downloads MLB transaction records from the public stats API,
classifies each one for injury-relatedness and writes three CSV tables:
all transactions, the injury-related subset and a dense daily time series.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to iltracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Invalid configuration")
			}
			Cfg = cfg

			// LOG_LEVEL/LOG_FORMAT take precedence over the config file
			if os.Getenv("LOG_LEVEL") == "" && os.Getenv("LOG_FORMAT") == "" {
				Log = config.ConfigureLoggingFromConfig(cfg)
			}

			// Hand the configured logger to the packages that keep one
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			common.SetLogger(adapter)
			store.SetLogger(adapter)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific fetch command flags
	StartYear int
	EndYear   int
	Sleep     float64

	// Specific classify command flags
	Description string
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.OutDir, "outdir", "o", "data", "Output directory for the CSV tables")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Keywords, "keywords", "k", "", "YAML file overriding the built-in injury keywords")
}
