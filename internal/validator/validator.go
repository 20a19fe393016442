package validator

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/vadar/internal/config"
	"github.com/arcanaland/vadar/internal/logging"
)

// ValidationResults holds the problems found in a config file
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a config file on disk
type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

// NewValidator creates a validator for the config at configPath
func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. A file that is missing or cannot be
// parsed is returned as an error; anything else is reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.decodeConfig()
	if err != nil {
		return v.Results, err
	}

	v.validateOracle(cfg.Oracle)
	v.validateServer(cfg.Server)
	v.validateLog(cfg.Log)
	v.validateEnvironment()

	return v.Results, nil
}

func (v *Validator) decodeConfig() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	md, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}

	// Unknown keys are most likely typos
	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}

	return cfg, nil
}

// validateOracle checks the text generation settings
func (v *Validator) validateOracle(o config.OracleConfig) {
	if strings.TrimSpace(o.Model) == "" {
		v.Results.Errors = append(v.Results.Errors, "oracle.model is required")
	}

	if err := checkHTTPURL(o.BaseURL); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("oracle.base_url %v", err))
	}

	if o.Timeout.Duration <= 0 {
		v.Results.Errors = append(v.Results.Errors, "oracle.timeout must be a positive duration")
	}
}

// validateServer checks the UUID service settings
func (v *Validator) validateServer(s config.ServerConfig) {
	if strings.TrimSpace(s.Host) == "" {
		v.Results.Errors = append(v.Results.Errors, "server.host is required")
	}

	if s.Port < 1 || s.Port > 65535 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("server.port must be between 1 and 65535, got %d", s.Port))
	}

	permissive := len(s.AllowedOrigins) == 0
	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			permissive = true
			continue
		}
		if err := checkHTTPURL(origin); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("server.allowed_origins entry %q %v", origin, err))
		}
	}

	for _, proxy := range s.TrustedProxies {
		if !validProxy(proxy) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("server.trusted_proxies entry %q is not an IP address or CIDR", proxy))
		}
	}

	if permissive && (s.Host == "0.0.0.0" || s.Host == "::") {
		v.Results.Warnings = append(v.Results.Warnings,
			"server listens on all interfaces with a permissive CORS policy")
	}
}

func (v *Validator) validateLog(l config.LogConfig) {
	if _, err := logging.ParseLevel(l.Level); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("log.level: %v", err))
	}
}

// validateEnvironment checks settings that live outside the file
func (v *Validator) validateEnvironment() {
	if os.Getenv(config.APIKeyEnv) == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s is not set; 'vadar fortune' will refuse to start", config.APIKeyEnv))
	}
}

func validProxy(s string) bool {
	if net.ParseIP(s) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(s)
	return err == nil
}

func checkHTTPURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("is not a valid URL: %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("has invalid scheme: %s (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("has no host: %q", raw)
	}
	return nil
}
