// session/config.go
// Description: This file contains the session configuration, its defaults and
// validation, and loaders that resolve configuration from the environment or a
// YAML file at the process boundary.
package session

import (
	"fmt"
	"os"
	"slices"
	"time"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = "pretty"
	DefaultTimeout               = 30 * time.Second
	DefaultMaxRedirects          = 5
)

// SessionConfig holds everything needed to build a Session. All fields are
// optional; credentials are accepted as-is without format validation, since
// the remote service is the ultimate validator.
type SessionConfig struct {
	// Credentials
	AppID       string
	AppSecret   string
	AccessToken string

	// Network
	BasePath     string            // Explicit Graph API base URL, wins over the env override
	Proxies      map[string]string // Scheme ("http"/"https") to proxy URL
	Timeout      time.Duration
	CABundlePath string // Override for the embedded CA chain bundle

	// Behaviour
	Debug            bool // Stored on the Session for request-issuing code; not acted on here
	CookieJarEnabled bool
	DisableRedirects bool // Redirects are followed unless set
	MaxRedirects     int

	// Log
	LogLevel          string
	LogOutputFormat   string // "json" for JSON format, "pretty" for human-readable format
	HideSensitiveData bool
}

// LoadConfigFromEnv returns a copy of config with unset fields filled from the
// process environment. Only the Graph base URL override is environment-driven;
// an explicit BasePath in config always wins. This is the one place the module
// touches the environment, so construction itself stays injectable.
func LoadConfigFromEnv(config SessionConfig) SessionConfig {
	if config.BasePath == "" {
		config.BasePath = os.Getenv(GraphBaseURLEnvVar)
	}
	return config
}

// fileConfig mirrors SessionConfig for YAML decoding. The timeout is carried
// as a duration string ("30s", "1m") rather than raw nanoseconds.
type fileConfig struct {
	AppID       string `yaml:"app_id"`
	AppSecret   string `yaml:"app_secret"`
	AccessToken string `yaml:"access_token"`

	BasePath     string            `yaml:"base_path"`
	Proxies      map[string]string `yaml:"proxies"`
	Timeout      string            `yaml:"timeout"`
	CABundlePath string            `yaml:"ca_bundle_path"`

	Debug            bool `yaml:"debug"`
	CookieJarEnabled bool `yaml:"cookie_jar_enabled"`
	DisableRedirects bool `yaml:"disable_redirects"`
	MaxRedirects     int  `yaml:"max_redirects"`

	LogLevel          string `yaml:"log_level"`
	LogOutputFormat   string `yaml:"log_output_format"`
	HideSensitiveData bool   `yaml:"hide_sensitive_data"`
}

// LoadConfigFromFile loads a SessionConfig from a YAML file at the given path.
func LoadConfigFromFile(filepath string) (*SessionConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, sessionerrors.NewConfigError("config_file", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, sessionerrors.NewConfigError("config_file", err)
	}

	config := &SessionConfig{
		AppID:             raw.AppID,
		AppSecret:         raw.AppSecret,
		AccessToken:       raw.AccessToken,
		BasePath:          raw.BasePath,
		Proxies:           raw.Proxies,
		CABundlePath:      raw.CABundlePath,
		Debug:             raw.Debug,
		CookieJarEnabled:  raw.CookieJarEnabled,
		DisableRedirects:  raw.DisableRedirects,
		MaxRedirects:      raw.MaxRedirects,
		LogLevel:          raw.LogLevel,
		LogOutputFormat:   raw.LogOutputFormat,
		HideSensitiveData: raw.HideSensitiveData,
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, sessionerrors.NewConfigError("timeout", err)
		}
		config.Timeout = timeout
	}

	return config, nil
}

// validateSessionConfig checks the configuration for values that cannot
// produce a working session.
func validateSessionConfig(config SessionConfig) error {
	validLogLevels := []string{
		"LogLevelDebug",
		"LogLevelInfo",
		"LogLevelWarn",
		"LogLevelError",
		"LogLevelPanic",
		"LogLevelFatal",
	}
	if !slices.Contains(validLogLevels, config.LogLevel) {
		return sessionerrors.NewConfigError("log_level",
			fmt.Errorf("invalid log level: %s", config.LogLevel))
	}

	validLogFormats := []string{
		"json",
		"pretty",
	}
	if !slices.Contains(validLogFormats, config.LogOutputFormat) {
		return sessionerrors.NewConfigError("log_output_format",
			fmt.Errorf("invalid log output format: %s", config.LogOutputFormat))
	}

	if config.Timeout < 0 {
		return sessionerrors.NewConfigError("timeout",
			fmt.Errorf("timeout cannot be less than 0 seconds"))
	}

	if !config.DisableRedirects && config.MaxRedirects < 1 {
		return sessionerrors.NewConfigError("max_redirects",
			fmt.Errorf("max redirects cannot be less than 1"))
	}

	for scheme := range config.Proxies {
		if scheme != "http" && scheme != "https" {
			return sessionerrors.NewConfigError("proxies",
				fmt.Errorf("unsupported proxy scheme %q", scheme))
		}
	}

	return nil
}

// SetDefaultValuesSessionConfig fills unset configuration fields with defaults.
func SetDefaultValuesSessionConfig(config *SessionConfig) {

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}

	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormatString
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}
