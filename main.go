package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"askbudget/budget-buddy/cmd/categorize"
	configcmd "askbudget/budget-buddy/cmd/config"
	"askbudget/budget-buddy/cmd/parse"
	"askbudget/budget-buddy/cmd/root"
	"askbudget/budget-buddy/cmd/serve"
	"askbudget/budget-buddy/cmd/tag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Initialize root command; flag defaults are assigned here
	root.Init()

	// 3. Apply LOG_LEVEL to loggers created before the config is read
	logrus.SetLevel(logLevelFromEnv())

	// 4. Add all subcommands
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(tag.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// logLevelFromEnv parses LOG_LEVEL, defaulting to info. When set it also
// overrides the config file's log level for the command logger.
func logLevelFromEnv() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		return logrus.InfoLevel
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		return logrus.InfoLevel
	}
	if root.LogLevel == "" {
		root.LogLevel = logLevel.String()
	}
	return logLevel
}

func main() {
	if err := root.Cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
