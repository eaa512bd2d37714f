// proxy/proxy_test.go
package proxy

import (
	"net/http"
	"testing"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
	"github.com/deploymenttheory/go-graph-api-session/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietMockLogger() *mocklogger.MockLogger {
	log := mocklogger.NewMockLogger()
	log.On("Debug", mock.Anything, mock.Anything).Return()
	log.On("Info", mock.Anything, mock.Anything).Return()
	log.On("Warn", mock.Anything, mock.Anything).Return()
	log.On("Error", mock.Anything, mock.Anything).Return(nil)
	return log
}

// TestSetupProxyTable verifies the per-scheme selector routes each scheme to
// its configured proxy and leaves unmapped schemes direct.
func TestSetupProxyTable(t *testing.T) {
	transport := &http.Transport{}

	err := SetupProxyTable(transport, map[string]string{
		"https": "http://proxy.example:8080",
	}, newQuietMockLogger())
	require.NoError(t, err)
	require.NotNil(t, transport.Proxy, "A proxy selector should be installed")

	httpsProxy, err := SelectProxyForScheme(transport, "https")
	require.NoError(t, err)
	require.NotNil(t, httpsProxy)
	assert.Equal(t, "http://proxy.example:8080", httpsProxy.String())

	httpProxy, err := SelectProxyForScheme(transport, "http")
	require.NoError(t, err)
	assert.Nil(t, httpProxy, "Schemes without a mapping should go direct")
}

// TestSetupProxyTable_BothSchemes verifies independent mappings per scheme.
func TestSetupProxyTable_BothSchemes(t *testing.T) {
	transport := &http.Transport{}

	err := SetupProxyTable(transport, map[string]string{
		"http":  "http://insecure-proxy.example:3128",
		"https": "http://secure-proxy.example:8080",
	}, newQuietMockLogger())
	require.NoError(t, err)

	httpProxy, err := SelectProxyForScheme(transport, "http")
	require.NoError(t, err)
	assert.Equal(t, "http://insecure-proxy.example:3128", httpProxy.String())

	httpsProxy, err := SelectProxyForScheme(transport, "https")
	require.NoError(t, err)
	assert.Equal(t, "http://secure-proxy.example:8080", httpsProxy.String())
}

// TestSetupProxyTable_EmptyMapping verifies an empty table leaves the transport untouched.
func TestSetupProxyTable_EmptyMapping(t *testing.T) {
	transport := &http.Transport{}

	err := SetupProxyTable(transport, nil, newQuietMockLogger())
	require.NoError(t, err)
	assert.Nil(t, transport.Proxy)

	err = SetupProxyTable(transport, map[string]string{}, newQuietMockLogger())
	require.NoError(t, err)
	assert.Nil(t, transport.Proxy)
}

// TestSetupProxyTable_UnsupportedScheme verifies unknown schemes are rejected as a ConfigError.
func TestSetupProxyTable_UnsupportedScheme(t *testing.T) {
	transport := &http.Transport{}

	err := SetupProxyTable(transport, map[string]string{
		"socks5": "socks5://proxy.example:1080",
	}, newQuietMockLogger())

	assert.True(t, sessionerrors.IsConfigError(err), "Error should be a ConfigError")
}

// TestSelectProxyForScheme_NoSelector verifies inspection of an unconfigured transport.
func TestSelectProxyForScheme_NoSelector(t *testing.T) {
	proxyURL, err := SelectProxyForScheme(&http.Transport{}, "https")
	require.NoError(t, err)
	assert.Nil(t, proxyURL)
}
