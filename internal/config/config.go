// Package config loads the viewer configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the hledger-viewer.yaml configuration.
type Config struct {
	// HLedgerPath is the hledger binary to invoke.
	HLedgerPath string `yaml:"hledger_path"`
	// TimeoutSeconds bounds one report invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Journal is the default journal file. Empty means the LEDGER_FILE
	// environment variable, then hledger's own default.
	Journal string `yaml:"journal"`
}

func Default() Config {
	return Config{
		HLedgerPath:    "hledger",
		TimeoutSeconds: 30,
	}
}

// Load reads a config file from disk. A missing file is not an error: the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	return normalize(cfg), nil
}

// DefaultPath is the per-user config location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hledger-viewer", "config.yaml")
}

func normalize(cfg Config) Config {
	defaults := Default()
	if cfg.HLedgerPath == "" {
		cfg.HLedgerPath = defaults.HLedgerPath
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}
	return cfg
}

// Timeout returns the invocation timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// JournalFile resolves the journal to pass to hledger. Empty means let
// hledger pick its own default.
func (c Config) JournalFile() string {
	if c.Journal != "" {
		return c.Journal
	}
	return os.Getenv("LEDGER_FILE")
}
