package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads a .env file from the working directory or its parent, once.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv() string {
	var loaded string
	once.Do(func() {
		loaded = loadEnvFile()
	})
	return loaded
}

func loadEnvFile() string {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return ""
		}
	}

	// Existing variables win over the file.
	if err := godotenv.Load(envFile); err != nil {
		return ""
	}
	return envFile
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
