// Package config loads and saves the application's YAML configuration,
// creating a default one on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Keystore configuration
	Keystore struct {
		SeedFile string `yaml:"seedFile"`
		// PassphraseEnv names an environment variable holding a
		// passphrase to encrypt the seed file under. Empty means the
		// seed is stored in the clear.
		PassphraseEnv string `yaml:"passphraseEnv"`
	} `yaml:"keystore"`

	// SharedSecret configuration
	SharedSecret struct {
		DefaultLength int `yaml:"defaultLength"`
	} `yaml:"sharedSecret"`

	// General settings
	General struct {
		LogLevel string `yaml:"logLevel"`
		Debug    bool   `yaml:"debug"`
	} `yaml:"general"`
}

// LoadConfig loads the configuration from the specified file, creating a
// default one if it does not exist.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".ristretto255-strobe", "config.yaml")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := createDefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to configPath.
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetKeystoreConfig returns the keystore configuration section.
func (c *Config) GetKeystoreConfig() struct {
	SeedFile      string `yaml:"seedFile"`
	PassphraseEnv string `yaml:"passphraseEnv"`
} {
	return c.Keystore
}

// GetSharedSecretConfig returns the shared-secret configuration section.
func (c *Config) GetSharedSecretConfig() struct {
	DefaultLength int `yaml:"defaultLength"`
} {
	return c.SharedSecret
}

// GetGeneralConfig returns the general configuration section.
func (c *Config) GetGeneralConfig() struct {
	LogLevel string `yaml:"logLevel"`
	Debug    bool   `yaml:"debug"`
} {
	return c.General
}

func createDefaultConfig() *Config {
	config := &Config{}

	config.Keystore.SeedFile = "seed.key"
	config.SharedSecret.DefaultLength = 32
	config.General.LogLevel = "info"
	config.General.Debug = false

	return config
}
