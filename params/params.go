// params.go

/* The params package manages the default query parameters a Graph API session
attaches to every request it decorates. The parameter table is treated as an
immutable value: construction helpers return fresh copies, and application onto
a request URL merges without mutating the table, so a session's defaults can be
shared safely across goroutines. */

package params

import (
	"net/url"
	"sort"
)

// Params is a table of default query parameters keyed by parameter name.
type Params map[string]string

// AccessTokenKey is the query parameter carrying the access token.
const AccessTokenKey = "access_token"

// AppSecretProofKey is the query parameter carrying the application secret proof.
const AppSecretProofKey = "appsecret_proof"

// New returns a parameter table holding the authentication defaults.
// access_token is always present, even when empty; appsecret_proof is added
// only when a proof was computed.
func New(accessToken, appSecretProof string) Params {
	p := Params{
		AccessTokenKey: accessToken,
	}
	if appSecretProof != "" {
		p[AppSecretProofKey] = appSecretProof
	}
	return p
}

// Clone returns an independent copy of the parameter table.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// With returns a copy of the table with key set to value. The receiver is not modified.
func (p Params) With(key, value string) Params {
	clone := p.Clone()
	clone[key] = value
	return clone
}

// ApplyTo merges the table into the query of u. Values already present in the
// URL win over the defaults, so a per-call override always takes effect.
func (p Params) ApplyTo(u *url.URL) {
	query := u.Query()
	for key, value := range p {
		if !query.Has(key) {
			query.Set(key, value)
		}
	}
	u.RawQuery = query.Encode()
}

// Encode returns the table in URL-encoded form with keys in sorted order.
func (p Params) Encode() string {
	values := url.Values{}
	for k, v := range p {
		values.Set(k, v)
	}
	return values.Encode()
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
