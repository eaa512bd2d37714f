// session/session.go
/* The `session` package configures an authenticated HTTP session for the Graph
API. It holds the supplied credentials, computes the appsecret proof when an
application secret is present, and builds one reusable http.Client with pinned
TLS trust, the configured proxy table, cookie jar and redirect policy. The
Session performs no network I/O itself; request-issuing code elsewhere consumes
the client and the default parameter table it exposes. */
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-graph-api-session/certbundle"
	"github.com/deploymenttheory/go-graph-api-session/cookiejar"
	"github.com/deploymenttheory/go-graph-api-session/logger"
	"github.com/deploymenttheory/go-graph-api-session/params"
	"github.com/deploymenttheory/go-graph-api-session/proof"
	"github.com/deploymenttheory/go-graph-api-session/proxy"
	"github.com/deploymenttheory/go-graph-api-session/redirecthandler"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Master struct/object
type Session struct {
	// Private
	id             string
	config         SessionConfig
	baseURL        string
	appSecretProof string
	defaultParams  params.Params
	http           *http.Client

	// Exported
	Logger logger.Logger
}

// BuildSession creates a new Graph API session from the provided configuration.
// Construction is single-shot: credentials are fixed once the Session exists,
// and no network calls are made here.
func BuildSession(config SessionConfig, populateDefaultValues bool) (*Session, error) {

	if populateDefaultValues {
		SetDefaultValuesSessionConfig(&config)
	}

	if err := validateSessionConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat)
	log.SetLevel(parsedLogLevel)

	baseURL := ResolveBaseURL(config.BasePath, "")

	// Appsecret proof, only when an application secret was configured.
	var appSecretProof string
	if config.AppSecret != "" {
		computed, err := proof.Compute(config.AppSecret, config.AccessToken)
		if err != nil {
			log.Error("Failed to compute appsecret proof", zap.Error(err))
			return nil, err
		}
		appSecretProof = computed
	}

	defaultParams := params.New(config.AccessToken, appSecretProof)

	// TLS trust is always pinned to the bundled certificate chain.
	tlsConfig, err := certbundle.TLSConfig(config.CABundlePath)
	if err != nil {
		log.Error("Failed to load CA chain bundle", zap.Error(err))
		return nil, err
	}

	transport := &http.Transport{
		TLSClientConfig: tlsConfig,
	}

	if err := proxy.SetupProxyTable(transport, config.Proxies, log); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
	}

	if err := cookiejar.SetupCookieJar(httpClient, config.CookieJarEnabled, log); err != nil {
		return nil, err
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, !config.DisableRedirects, config.MaxRedirects, log); err != nil {
		log.Error("Failed to set up redirect handler", zap.Error(err))
		return nil, err
	}

	sessionID := uuid.NewString()

	session := &Session{
		id:             sessionID,
		config:         config,
		baseURL:        baseURL,
		appSecretProof: appSecretProof,
		defaultParams:  defaultParams,
		http:           httpClient,
		Logger:         log.With(zap.String("SessionID", sessionID)),
	}

	// Log the session's configuration.
	session.Logger.Debug("New Graph API session initialized",
		zap.String("Base URL", baseURL),
		zap.String("App ID", config.AppID),
		zap.String("Access Token", params.RedactSensitiveParamData(config.HideSensitiveData, params.AccessTokenKey, config.AccessToken)),
		zap.Bool("Appsecret Proof Set", appSecretProof != ""),
		zap.Int("Proxy Mappings", len(config.Proxies)),
		zap.Duration("Timeout", config.Timeout),
		zap.Bool("Debug", config.Debug),
		zap.Bool("Cookie Jar Enabled", config.CookieJarEnabled),
		zap.Bool("Disable Redirects", config.DisableRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
	)

	return session, nil
}

// NewSessionFromEnv builds a session after filling unset configuration fields
// from the process environment. This is the boundary where the
// FACEBOOK_GRAPH_BASE_URL override is honored; BuildSession itself never
// touches the environment.
func NewSessionFromEnv(config SessionConfig) (*Session, error) {
	return BuildSession(LoadConfigFromEnv(config), true)
}

// ID returns the correlation identifier attached to the session's log entries.
func (s *Session) ID() string {
	return s.id
}

// AppID returns the configured application id.
func (s *Session) AppID() string {
	return s.config.AppID
}

// BaseURL returns the resolved Graph API base URL, without a trailing slash.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// AppSecretProof returns the computed appsecret proof and whether one was set.
func (s *Session) AppSecretProof() (string, bool) {
	return s.appSecretProof, s.appSecretProof != ""
}

// Timeout returns the configured request timeout.
func (s *Session) Timeout() time.Duration {
	return s.config.Timeout
}

// Debug reports whether the session was configured for debugging. The flag is
// stored for request-issuing code; nothing in this package acts on it.
func (s *Session) Debug() bool {
	return s.config.Debug
}

// HTTPClient returns the configured, reusable HTTP client. The Session owns
// the client; callers share it but must not reconfigure it.
func (s *Session) HTTPClient() *http.Client {
	return s.http
}

// DefaultParams returns a copy of the default query parameter table. The
// session's own table is never exposed for mutation.
func (s *Session) DefaultParams() params.Params {
	return s.defaultParams.Clone()
}
