// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"askbudget/budget-buddy/internal/config"
	"askbudget/budget-buddy/internal/container"
	"askbudget/budget-buddy/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewDefaultLogger()

	// AppConfig is the effective configuration, set before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies, set before any subcommand runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-buddy",
		Short: "Parse PhonePe and SBI statements and categorize spending.",
		Long: `budget-buddy extracts transactions from PhonePe and SBI PDF statements
and assigns each one a spending category using your own overrides, a local
cache, an optional Gemini classifier and built-in keyword rules.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-buddy!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: initializeApp,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to release resources")
			}
		},
		SilenceUsage: true,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// ConfigFile is an explicit config file path; empty uses the search path
	ConfigFile string

	// LogLevel and LogFormat override the log section when set
	LogLevel  string
	LogFormat string

	initOnce sync.Once
)

// Init initializes the root command and all flags. Safe to call repeatedly.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
		Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default: $HOME/.budget-buddy/config.yaml)")
		Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text, json)")
	})
}

func initializeApp(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if LogLevel != "" {
		cfg.Log.Level = strings.ToLower(LogLevel)
	}
	if LogFormat != "" {
		cfg.Log.Format = strings.ToLower(LogFormat)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	AppConfig = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := container.NewContainer(ctx, cfg, container.WithLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	return nil
}

// GetContainer returns the application container, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the effective configuration, or nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}
