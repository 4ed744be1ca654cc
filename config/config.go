// Package config provides configuration management for the rocket simulator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/guttosm/rocket-sim/internal/i18n"
)

// Config holds the complete application configuration.
type Config struct {
	Log     LogConfig
	Metrics MetricsConfig
	// Locale is the supported base language used for prompts and messages.
	Locale string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	// TextfilePath is where metrics are written when a run ends. Empty disables it.
	TextfilePath string
}

// DefaultEnvFile is the dotenv file Load reads when ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Load creates a Config from environment variables and, when CONFIG_FILE is
// set, from that file. Environment variables take precedence over the file.
// Variables from the dotenv file named by ENV_FILE are added to the
// environment first without overriding it.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("metrics_textfile", "")
	v.SetDefault("locale", "")
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	locale := v.GetString("locale")
	if locale == "" {
		locale = v.GetString("lang")
	}

	return Config{
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Pretty: v.GetBool("log_pretty"),
		},
		Metrics: MetricsConfig{
			TextfilePath: v.GetString("metrics_textfile"),
		},
		Locale: i18n.ParseLocale(locale),
	}, nil
}

// LoadEnvFile adds the variables of a dotenv file to the process environment.
// Variables that are already set keep their value. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading env file: %w", err)
	}
	return nil
}
