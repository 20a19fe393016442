package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/arcanaland/vadar/internal/oracle"
)

// APIKeyEnv names the environment variable holding the text generation API key
const APIKeyEnv = "GEMINI_API_KEY"

// ErrMissingAPIKey is returned by APIKey when the key is not set
var ErrMissingAPIKey = errors.New(APIKeyEnv + " must be set")

// Config represents the application configuration
type Config struct {
	Oracle OracleConfig `toml:"oracle"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// OracleConfig configures the text generation backend
type OracleConfig struct {
	Model   string   `toml:"model"`
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// ServerConfig configures the UUID service
type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honored
	TrustedProxies []string `toml:"trusted_proxies"`
}

// LogConfig configures the stderr logger
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string ("30s") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration such as "30s"
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in time.Duration.String form
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Oracle: OracleConfig{
			Model:   oracle.DefaultModel,
			BaseURL: oracle.DefaultBaseURL,
			Timeout: Duration{oracle.DefaultTimeout},
		},
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           6969,
			AllowedOrigins: []string{"*"},
			TrustedProxies: []string{},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "vadar", "config.toml")
}

// LoadEnv loads a .env file from the working directory, if present
func LoadEnv() {
	_ = godotenv.Load()
}

// APIKey returns the text generation API key from the environment
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return LoadFile(configPath)
}

// LoadFile decodes the config at path on top of the defaults
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := SaveConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to path as TOML
func SaveConfig(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
