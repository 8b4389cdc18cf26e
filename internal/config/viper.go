// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"askbudget/budget-buddy/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	AI     AIConfig     `mapstructure:"ai" yaml:"ai"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// LogConfig controls the logrus backend.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the category cache and user mapping documents.
type DataConfig struct {
	Directory    string `mapstructure:"directory" yaml:"directory"`
	CacheFile    string `mapstructure:"cache_file" yaml:"cache_file"`
	MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
}

// AIConfig configures the remote classification service.
type AIConfig struct {
	Enabled           bool   `mapstructure:"enabled" yaml:"enabled"`
	Model             string `mapstructure:"model" yaml:"model"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	APIKey            string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

// CSVConfig controls CSV output of parsed statements.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Address        string   `mapstructure:"address" yaml:"address"`
	MaxUploadMB    int      `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// CachePath returns the location of the category cache document.
func (c *Config) CachePath() string {
	return filepath.Join(c.Data.Directory, c.Data.CacheFile)
}

// MappingsPath returns the location of the user mapping document.
func (c *Config) MappingsPath() string {
	return filepath.Join(c.Data.Directory, c.Data.MappingsFile)
}

// AITimeout returns the per-call deadline for the classification service.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// CSVDelimiter returns the configured delimiter as a rune, ',' when unset.
func (c *Config) CSVDelimiter() rune {
	if r := []rune(c.CSV.Delimiter); len(r) > 0 {
		return r[0]
	}
	return ','
}

// InitializeConfig loads defaults, then the config file, then environment
// variables. An explicit configFile replaces the search path lookup.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.budget-buddy")
		v.AddConfigPath(".budget-buddy")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configFile != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key comes from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration built from defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("data.cache_file", "category_cache.json")
	v.SetDefault("data.mappings_file", "category_mappings.json")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.requests_per_minute", 10)
	v.SetDefault("ai.api_key", "")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.max_upload_mb", 20)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:8501"})
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.CacheFile) == "" || strings.TrimSpace(config.Data.MappingsFile) == "" {
		return fmt.Errorf("data.cache_file and data.mappings_file must not be empty")
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// A missing API key is not an error: the container falls back to the keyword rules.
	if config.AI.Enabled {
		if config.AI.RequestsPerMinute < 1 || config.AI.RequestsPerMinute > 1000 {
			return fmt.Errorf("ai.requests_per_minute must be between 1 and 1000, got: %d", config.AI.RequestsPerMinute)
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if config.Server.MaxUploadMB < 1 {
		return fmt.Errorf("server.max_upload_mb must be positive, got: %d", config.Server.MaxUploadMB)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
