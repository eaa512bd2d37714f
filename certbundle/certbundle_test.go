// certbundle/certbundle_test.go
package certbundle

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPool_EmbeddedBundle verifies the shipped CA chain parses into a pool.
func TestPool_EmbeddedBundle(t *testing.T) {
	pool, err := Pool("")
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

// TestPool_OverridePath verifies a bundle on disk can replace the embedded one.
func TestPool_OverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override_bundle.crt")
	require.NoError(t, os.WriteFile(path, bundledCAChain, 0o600))

	pool, err := Pool(path)
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

// TestPool_MissingOverride verifies a missing bundle file surfaces as a ConfigError.
func TestPool_MissingOverride(t *testing.T) {
	pool, err := Pool(filepath.Join(t.TempDir(), "does_not_exist.crt"))
	assert.Nil(t, pool)
	assert.True(t, sessionerrors.IsConfigError(err), "Error should be a ConfigError")
}

// TestPool_MalformedBundle verifies PEM data without certificates is rejected.
func TestPool_MalformedBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.crt")
	require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

	pool, err := Pool(path)
	assert.Nil(t, pool)
	assert.True(t, sessionerrors.IsConfigError(err), "Error should be a ConfigError")
}

// TestTLSConfig verifies the TLS config pins trust to the bundle, not system roots.
func TestTLSConfig(t *testing.T) {
	tlsConfig, err := TLSConfig("")
	require.NoError(t, err)

	assert.NotNil(t, tlsConfig.RootCAs, "Root CAs must be pinned to the bundled chain")
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion, "TLS 1.2 should be the floor")
}
