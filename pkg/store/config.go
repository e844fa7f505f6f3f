package store

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where to live.
type Config interface {
	BasePath() string
	LogLevel() string
}

// LoadConfig reads .daybook.yaml from $DAYBOOK_CONFIG_PATH or the working
// directory, overlaid with DAYBOOK_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daybook.db")
	viper.SetDefault("log_level", "warn")
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	cfg := &fileConfig{Path: path, Level: viper.GetString("log_level")}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("store: invalid config: %w", err)
	}
	return cfg, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Level string `json:"log_level"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// Validate checks the loaded values.
func (f *fileConfig) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Path, validation.Required),
		validation.Field(&f.Level, validation.In(
			"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace",
		)),
	)
}
