// Package config loads arcade settings from ~/.arcade/config.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings.
type Config struct {
	// APIKey authenticates against SteamGridDB. Required for sync and
	// game creation; browsing the local catalog works without it.
	APIKey string

	// LogLimit caps how many audit entries `arcade log` prints by default.
	LogLimit int
}

const defaultLogLimit = 20

// Dir returns the arcade configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".arcade"), nil
}

// Load reads configuration from ~/.arcade/config.yaml, a local .env file,
// and ARCADE_* environment variables. Environment wins over file values; a
// missing config file is not an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads configuration rooted at the given directory. Tests point
// this at a temp directory.
func LoadFrom(dir string) (*Config, error) {
	// A .env in the working directory can carry the API key during
	// development. Missing is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("ARCADE")
	v.AutomaticEnv()
	_ = v.BindEnv("api_key")
	_ = v.BindEnv("log_limit")

	v.SetDefault("log_limit", defaultLogLimit)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		APIKey:   v.GetString("api_key"),
		LogLimit: v.GetInt("log_limit"),
	}, nil
}

// WriteTemplate creates a commented starter config if none exists yet.
func WriteTemplate(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	template := `# arcade configuration
# SteamGridDB API key (https://www.steamgriddb.com/profile/preferences/api)
api_key: ""

# Default number of entries shown by 'arcade log'
log_limit: 20
`
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("failed to write config template: %w", err)
	}

	return path, nil
}
