// session/request.go
package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/deploymenttheory/go-graph-api-session/version"
)

// NewRequest builds an http.Request for a Graph API endpoint with the
// session's default query parameters applied. Query values already present on
// the endpoint win over the defaults, so a per-call access_token override
// takes effect. Dispatching the request is the caller's job.
func (s *Session) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	fullURL, err := s.EndpointURL(endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}

	s.defaultParams.ApplyTo(req.URL)

	req.Header.Set("User-Agent", version.GetUserAgentHeader())
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// EndpointURL joins an endpoint path onto the session's base URL. Absolute
// URLs pass through untouched so callers can follow paging links returned by
// the API.
func (s *Session) EndpointURL(endpoint string) (string, error) {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		if _, err := url.Parse(endpoint); err != nil {
			return "", fmt.Errorf("invalid endpoint URL %q: %w", endpoint, err)
		}
		return endpoint, nil
	}

	return s.baseURL + "/" + strings.TrimLeft(endpoint, "/"), nil
}
