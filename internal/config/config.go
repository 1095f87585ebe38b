// Package config loads replykit configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backend names accepted in configuration.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Config holds all replykit settings.
type Config struct {
	// StorageBackend selects the snapshot store: "diskv" or "sqlite".
	StorageBackend string `mapstructure:"storage_backend"`

	// StoragePath is the directory (diskv) or database file (sqlite)
	// holding the persisted collection.
	StoragePath string `mapstructure:"storage_path"`

	// MailApp is the name of the mail application driven by the
	// insertion pipeline.
	MailApp string `mapstructure:"mail_app"`

	// LogLevel is a zerolog level string.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from ~/.config/replykit/config.yaml (if
// present), the current directory, and REPLYKIT_* environment
// variables, with defaults for everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("storage_backend", BackendDiskv)
	v.SetDefault("storage_path", defaultStoragePath())
	v.SetDefault("mail_app", "Mail")
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "replykit"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("REPLYKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.StorageBackend != BackendDiskv && cfg.StorageBackend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".replykit"
	}
	return filepath.Join(home, ".local", "share", "replykit")
}
