// Package config provides configuration management for jdkup. It handles
// loading and validating application settings from YAML files and provides
// sensible defaults for the single supported JDK release channel.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glorpus-work/jdkup/pkg/errors"
	"github.com/glorpus-work/jdkup/pkg/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Repository is the release-listing repository identifier (owner/repo).
	Repository string `yaml:"repository"`

	// AssetPattern is the filename glob selecting the release asset for the
	// supported OS/architecture combination.
	AssetPattern string `yaml:"asset_pattern"`

	// APIBase is the base URL of the release-listing API.
	APIBase string `yaml:"api_base,omitempty"`

	// DestDir is the default installation destination.
	DestDir string `yaml:"dest_dir,omitempty"`

	// HTTPTimeout bounds every network call.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// MinJavaVersion, when set, is the lowest version the verifier accepts.
	MinJavaVersion string `yaml:"min_java_version,omitempty"`

	// LogLevel selects the logger verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default configuration values.
const (
	DefaultRepository  = "adoptium/temurin21-binaries"
	DefaultAPIBase     = "https://api.github.com"
	DefaultHTTPTimeout = 5 * time.Minute
	DefaultLogLevel    = "info"
)

// DefaultConfig returns a configuration with default values for the supported
// release channel.
func DefaultConfig() *Config {
	return &Config{
		Repository:   DefaultRepository,
		AssetPattern: fmt.Sprintf("OpenJDK21U-jdk_%s_windows_hotspot_*.zip", platform.AssetArch()),
		APIBase:      DefaultAPIBase,
		DestDir:      platform.DefaultInstallDir(),
		HTTPTimeout:  DefaultHTTPTimeout,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig loads configuration from the given YAML file. Values absent from
// the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from path if given, otherwise
// from the default location if present, otherwise returns defaults.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(defaultPath)
}

// GetDefaultConfigPath returns the platform-specific default config file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(configDir, "jdkup", "config.yaml"), nil
}

// Validate checks the configuration for obviously unusable values.
func (c *Config) Validate() error {
	if c.Repository == "" {
		return errors.Wrap(errors.ErrConfiguration, "repository must not be empty")
	}
	if c.AssetPattern == "" {
		return errors.Wrap(errors.ErrConfiguration, "asset_pattern must not be empty")
	}
	if c.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfiguration, "http_timeout must not be negative")
	}
	return nil
}
