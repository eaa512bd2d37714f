// session/config_test.go
package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetDefaultValuesSessionConfig verifies defaulting only fills unset fields.
func TestSetDefaultValuesSessionConfig(t *testing.T) {
	config := SessionConfig{}
	SetDefaultValuesSessionConfig(&config)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultTimeout, config.Timeout)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)

	custom := SessionConfig{
		LogLevel:     "LogLevelError",
		Timeout:      10 * time.Second,
		MaxRedirects: 2,
	}
	SetDefaultValuesSessionConfig(&custom)

	assert.Equal(t, "LogLevelError", custom.LogLevel)
	assert.Equal(t, 10*time.Second, custom.Timeout)
	assert.Equal(t, 2, custom.MaxRedirects)
}

// TestValidateSessionConfig covers each rejection rule.
func TestValidateSessionConfig(t *testing.T) {
	valid := SessionConfig{
		LogLevel:        DefaultLogLevelString,
		LogOutputFormat: DefaultLogOutputFormatString,
		MaxRedirects:    DefaultMaxRedirects,
	}
	assert.NoError(t, validateSessionConfig(valid))

	tests := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{"Invalid log level", func(c *SessionConfig) { c.LogLevel = "verbose" }},
		{"Invalid log format", func(c *SessionConfig) { c.LogOutputFormat = "xml" }},
		{"Negative timeout", func(c *SessionConfig) { c.Timeout = -time.Second }},
		{"Zero redirects while following", func(c *SessionConfig) { c.MaxRedirects = 0 }},
		{"Unsupported proxy scheme", func(c *SessionConfig) { c.Proxies = map[string]string{"ftp": "http://proxy:1"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			err := validateSessionConfig(config)
			assert.True(t, sessionerrors.IsConfigError(err), "Error should be a ConfigError")
		})
	}
}

// TestLoadConfigFromEnv verifies the env override fills only an unset BasePath.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(GraphBaseURLEnvVar, "https://apigee.example.com/graph/")

	fromEnv := LoadConfigFromEnv(SessionConfig{})
	assert.Equal(t, "https://apigee.example.com/graph/", fromEnv.BasePath)

	explicit := LoadConfigFromEnv(SessionConfig{BasePath: "https://proxy.internal/graph"})
	assert.Equal(t, "https://proxy.internal/graph", explicit.BasePath, "An explicit base path should win over the environment")
}

// TestLoadConfigFromEnv_Unset verifies nothing is filled without the variable.
func TestLoadConfigFromEnv_Unset(t *testing.T) {
	t.Setenv(GraphBaseURLEnvVar, "")

	config := LoadConfigFromEnv(SessionConfig{})
	assert.Empty(t, config.BasePath)
}

// TestLoadConfigFromFile verifies YAML loading including duration parsing.
func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	contents := `
app_id: "12345"
app_secret: "shhh"
access_token: "tok123"
base_path: "https://proxy.internal/graph/"
timeout: "45s"
proxies:
  https: "http://proxy.example:8080"
debug: true
cookie_jar_enabled: true
hide_sensitive_data: true
log_level: "LogLevelDebug"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "12345", config.AppID)
	assert.Equal(t, "shhh", config.AppSecret)
	assert.Equal(t, "tok123", config.AccessToken)
	assert.Equal(t, "https://proxy.internal/graph/", config.BasePath)
	assert.Equal(t, 45*time.Second, config.Timeout)
	assert.Equal(t, map[string]string{"https": "http://proxy.example:8080"}, config.Proxies)
	assert.True(t, config.Debug)
	assert.True(t, config.CookieJarEnabled)
	assert.True(t, config.HideSensitiveData)
	assert.Equal(t, "LogLevelDebug", config.LogLevel)
}

// TestLoadConfigFromFile_Errors covers missing files, bad YAML and bad durations.
func TestLoadConfigFromFile_Errors(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, sessionerrors.IsConfigError(err))

	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("app_id: [unclosed"), 0o600))
	_, err = LoadConfigFromFile(badYAML)
	assert.True(t, sessionerrors.IsConfigError(err))

	badTimeout := filepath.Join(t.TempDir(), "timeout.yaml")
	require.NoError(t, os.WriteFile(badTimeout, []byte(`timeout: "fast"`), 0o600))
	_, err = LoadConfigFromFile(badTimeout)
	assert.True(t, sessionerrors.IsConfigError(err))
}
