// proxy.go

package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
	"github.com/deploymenttheory/go-graph-api-session/logger"
	"go.uber.org/zap"
)

// SetupProxyTable installs a per-scheme proxy selector on the transport based
// on the provided mapping from URL scheme ("http", "https") to proxy URL.
// Requests whose scheme has no mapping go direct. An empty or nil mapping
// leaves the transport untouched.
func SetupProxyTable(transport *http.Transport, proxies map[string]string, log logger.Logger) error {
	if len(proxies) == 0 {
		return nil // No proxy configuration provided, nothing to do
	}

	parsed := make(map[string]*url.URL, len(proxies))
	for scheme, proxyURL := range proxies {
		if scheme != "http" && scheme != "https" {
			log.Error("Unsupported proxy scheme", zap.String("scheme", scheme))
			return sessionerrors.NewConfigError("proxies",
				fmt.Errorf("unsupported proxy scheme %q", scheme))
		}

		parsedProxyURL, err := url.Parse(proxyURL)
		if err != nil {
			log.Error("Failed to parse proxy URL", zap.String("scheme", scheme), zap.Error(err))
			return sessionerrors.NewConfigError("proxies", err)
		}
		parsed[scheme] = parsedProxyURL
	}

	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		if proxyURL, ok := parsed[req.URL.Scheme]; ok {
			return proxyURL, nil
		}
		return nil, nil
	}

	for scheme, proxyURL := range parsed {
		log.Info("Proxy configured",
			zap.String("scheme", scheme),
			zap.String("ProxyURL", proxyURL.Redacted()),
		)
	}
	return nil
}

// SelectProxyForScheme resolves the proxy a configured transport would use for
// the given scheme. It exists so callers can inspect the effective proxy table
// without issuing a request.
func SelectProxyForScheme(transport *http.Transport, scheme string) (*url.URL, error) {
	if transport.Proxy == nil {
		return nil, nil
	}
	req := &http.Request{URL: &url.URL{Scheme: scheme, Host: "example.com"}}
	return transport.Proxy(req)
}
