// certbundle.go

/* The certbundle package pins the TLS trust of clients built by this module to
the certificate chain bundle shipped alongside it, rather than the platform's
default trust store. The bundle is compiled into the binary with go:embed; a
bundle on disk can be substituted for it through the session configuration,
which is mainly useful when routing through an intercepting corporate proxy. */

package certbundle

import (
	"crypto/tls"
	"crypto/x509"
	_ "embed"
	"fmt"
	"os"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
)

//go:embed graph_ca_chain_bundle.crt
var bundledCAChain []byte

// Pool returns a certificate pool holding only the trusted chain for the Graph
// API. When overridePath is empty the embedded bundle is used; otherwise the
// bundle is read from that path. A missing file or PEM data with no parseable
// certificates is a fatal configuration error.
func Pool(overridePath string) (*x509.CertPool, error) {
	pemData := bundledCAChain
	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, sessionerrors.NewConfigError("ca_bundle_path", err)
		}
		pemData = data
	}

	pool := x509.NewCertPool()
	if ok := pool.AppendCertsFromPEM(pemData); !ok {
		return nil, sessionerrors.NewConfigError("ca_bundle_path",
			fmt.Errorf("no certificates could be parsed from the CA chain bundle"))
	}

	return pool, nil
}

// TLSConfig returns a tls.Config whose root CAs are pinned to the trusted
// chain, never the system trust store.
func TLSConfig(overridePath string) (*tls.Config, error) {
	pool, err := Pool(overridePath)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
