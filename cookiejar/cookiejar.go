// cookiejar/cookiejar.go

/* The cookiejar package provides cookie handling for clients built by this
module: initialization of a publicsuffix-aware cookie jar when the session
configuration enables one, redaction of the Graph platform's sensitive session
cookies before they reach logs, and parsing of cookies from HTTP headers. */

package cookiejar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/deploymenttheory/go-graph-api-session/logger"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// SetupCookieJar initializes the HTTP client with a cookie jar if enabled in
// the session configuration. The jar uses the public suffix list so cookies
// cannot be set for a top-level domain.
func SetupCookieJar(client *http.Client, enableCookieJar bool, log logger.Logger) error {
	if enableCookieJar {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			log.Error("Failed to create cookie jar", zap.Error(err))
			return fmt.Errorf("setupCookieJar failed: %w", err)
		}
		client.Jar = jar
	}
	return nil
}

// RedactSensitiveCookies redacts sensitive information from cookies.
// It takes a slice of *http.Cookie and returns a redacted slice of *http.Cookie.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	// Graph platform session cookies that must never appear in logs.
	sensitiveCookieNames := map[string]bool{
		"c_user": true,
		"xs":     true,
		"fr":     true,
		"datr":   true,
	}

	for _, cookie := range cookies {
		if _, found := sensitiveCookieNames[cookie.Name]; found {
			cookie.Value = "REDACTED"
		}
	}

	return cookies
}

// CookiesFromHeader converts cookies from http.Header to []*http.Cookie.
// This can be useful if cookies are stored in http.Header (e.g., from a response).
func CookiesFromHeader(header http.Header) []*http.Cookie {
	cookies := []*http.Cookie{}
	for _, cookieHeader := range header["Set-Cookie"] {
		if cookie := ParseCookieHeader(cookieHeader); cookie != nil {
			cookies = append(cookies, cookie)
		}
	}
	return cookies
}

// ParseCookieHeader parses a single Set-Cookie header and returns an *http.Cookie.
func ParseCookieHeader(header string) *http.Cookie {
	headerParts := strings.Split(header, ";")
	if len(headerParts) > 0 {
		cookieParts := strings.SplitN(headerParts[0], "=", 2)
		if len(cookieParts) == 2 {
			return &http.Cookie{Name: cookieParts[0], Value: cookieParts[1]}
		}
	}
	return nil
}
