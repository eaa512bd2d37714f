// session/basepath.go
package session

import "strings"

// DefaultGraphBaseURL is the Graph API base URL used when no override is configured.
const DefaultGraphBaseURL = "https://graph.facebook.com"

// GraphBaseURLEnvVar names the environment variable carrying an alternate
// Graph API base URL, e.g. an Apigee proxy in front of the real endpoint.
// It takes precedence over the built-in default but is itself overridden by
// an explicit BasePath in the session configuration.
const GraphBaseURLEnvVar = "FACEBOOK_GRAPH_BASE_URL"

// ResolveBaseURL applies the base URL precedence: the explicit value first,
// then the environment override, then the built-in default. Trailing slashes
// are always stripped so endpoint paths can be joined with a single "/".
func ResolveBaseURL(explicit, envOverride string) string {
	if explicit != "" {
		return strings.TrimRight(explicit, "/")
	}
	if envOverride != "" {
		return strings.TrimRight(envOverride, "/")
	}
	return DefaultGraphBaseURL
}
