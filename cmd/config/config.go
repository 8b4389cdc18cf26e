// Package config prints the effective configuration
package config

import (
	"fmt"

	"askbudget/budget-buddy/cmd/root"
	appconfig "askbudget/budget-buddy/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config file and environment
variables are merged. The API key is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := root.GetConfig()
		if cfg == nil {
			return fmt.Errorf("application is not initialized")
		}
		out, err := Render(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// Render marshals cfg as YAML.
func Render(cfg *appconfig.Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render configuration: %w", err)
	}
	return out, nil
}
