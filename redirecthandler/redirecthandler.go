// redirecthandler/redirecthandler.go

package redirecthandler

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-graph-api-session/logger"
	"github.com/deploymenttheory/go-graph-api-session/params"
	"go.uber.org/zap"
)

// RedirectHandler contains the redirect policy applied to a session's HTTP client.
type RedirectHandler struct {
	Logger           logger.Logger
	MaxRedirects     int      // Maximum allowed redirects to prevent infinite loops.
	SensitiveParams  []string // Query parameters stripped on cross-host redirects.
	SensitiveHeaders []string // Headers removed on cross-host redirects.
}

// MaxRedirectsError is returned when a redirect chain exceeds the configured limit.
type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("stopped after %d redirects", e.MaxRedirects)
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:       log,
		MaxRedirects: maxRedirects,
		SensitiveParams: []string{
			params.AccessTokenKey,
			params.AppSecretProofKey,
		},
		SensitiveHeaders: []string{"Authorization", "Cookie"},
	}
}

// SetupRedirectHandler applies the redirect policy to an http.Client. When
// followRedirects is false every redirect response is returned to the caller
// as-is; otherwise redirects are followed up to maxRedirects, with credentials
// stripped whenever the chain leaves the original host.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return nil
	}

	if maxRedirects < 1 {
		return fmt.Errorf("max redirects cannot be less than 1 when following redirects")
	}

	handler := NewRedirectHandler(log, maxRedirects)
	client.CheckRedirect = handler.checkRedirect
	return nil
}

// checkRedirect implements the redirect handling logic.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached", zap.Int("maxRedirects", r.MaxRedirects))
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	if crossedHost(req, via) {
		r.stripCredentials(req)
		r.Logger.Warn("Cross-host redirect, credentials stripped",
			zap.String("from", via[0].URL.Host),
			zap.String("to", req.URL.Host),
		)
	}

	r.Logger.Debug("Following redirect",
		zap.String("url", req.URL.Redacted()),
		zap.Int("hop", len(via)),
	)
	return nil
}

// crossedHost reports whether the redirect target host differs from the host
// the chain started on.
func crossedHost(req *http.Request, via []*http.Request) bool {
	if len(via) == 0 {
		return false
	}
	return req.URL.Host != via[0].URL.Host
}

// stripCredentials removes the session's authentication query parameters and
// sensitive headers from a request leaving the original host.
func (r *RedirectHandler) stripCredentials(req *http.Request) {
	query := req.URL.Query()
	for _, param := range r.SensitiveParams {
		query.Del(param)
	}
	req.URL.RawQuery = query.Encode()

	for _, header := range r.SensitiveHeaders {
		req.Header.Del(header)
	}
}
