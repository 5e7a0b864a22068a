package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = "space_allocator_config.yaml"

// Default store names. The default store bypasses the save-time override
// confirmation, as does the scratch store used by tests and demos.
const (
	DefaultStoreName = "default_store"
	ScratchStoreName = "scratch_store"
)

// Config represents the application configuration
type Config struct {
	// StoreDirectory is where sqlite store files live
	StoreDirectory string `yaml:"storeDirectory" validate:"required"`

	// FilesDirectory is where bulk-import people files are looked up
	FilesDirectory string `yaml:"filesDirectory,omitempty"`

	// DefaultStoreName is used when a save/load command names no store
	DefaultStoreName string `yaml:"defaultStoreName" validate:"required"`

	// ReservedStoreNames bypass name validation and override confirmation
	ReservedStoreNames []string `yaml:"reservedStoreNames,omitempty"`

	// Backend selects the store implementation
	Backend string `yaml:"backend,omitempty" validate:"omitempty,oneof=sqlite postgres"`

	// PostgresURL is required when Backend is postgres
	PostgresURL string `yaml:"postgresURL,omitempty"`

	// RandomSeed pins the allocation RNG for reproducible runs; unset means
	// a fresh crypto/rand seed per process
	RandomSeed *int64 `yaml:"randomSeed,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		StoreDirectory:     "databases",
		FilesDirectory:     "files",
		DefaultStoreName:   DefaultStoreName,
		ReservedStoreNames: []string{DefaultStoreName, ScratchStoreName},
		Backend:            "sqlite",
	}
}

// Load loads and validates the configuration. It looks for the config file
// in the current directory first, then in the user's home directory, and
// falls back to Default when neither exists.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration struct and cross-field rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Backend == "postgres" && cfg.PostgresURL == "" {
		return fmt.Errorf("config validation failed: postgresURL is required for the postgres backend")
	}
	if !slices.Contains(cfg.ReservedStoreNames, cfg.DefaultStoreName) {
		cfg.ReservedStoreNames = append(cfg.ReservedStoreNames, cfg.DefaultStoreName)
	}
	return nil
}

// findConfigFile searches the current directory and the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
