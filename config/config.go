package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the default config file location
	EnvConfigPath = "FUELKIT_CONFIG"

	defaultNetwork  = "testnet"
	defaultLevel    = "info"
	defaultEncoding = "console"
	defaultTimeout  = 30 * time.Second
)

type Config struct {
	Network      string        `yaml:"network"`
	Logging      LoggingConfig `yaml:"logging"`
	Timeout      time.Duration `yaml:"timeout"`
	KeystorePath string        `yaml:"keystore"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Dir returns ~/.fuelkit
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fuelkit"), nil
}

// DefaultPath returns $FUELKIT_CONFIG or ~/.fuelkit/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; ${VAR} references are expanded from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes cfg to path with owner-only permissions
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Network == "" {
		c.Network = defaultNetwork
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLevel
	}
	if c.Logging.Encoding == "" {
		c.Logging.Encoding = defaultEncoding
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.KeystorePath == "" {
		if dir, err := Dir(); err == nil {
			c.KeystorePath = filepath.Join(dir, "keystore.json")
		}
	}
}
