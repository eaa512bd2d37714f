// proof.go

/* The proof package computes the Graph API application secret proof. The proof
is an HMAC-SHA256 digest keyed with the application secret over the access
token, hex encoded, and is sent as the appsecret_proof request parameter so the
remote service can verify the caller holds the application secret and not just
a leaked access token. */

package proof

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	sessionerrors "github.com/deploymenttheory/go-graph-api-session/errors"
)

// HexLength is the length of an encoded proof: a 256-bit digest as lowercase hex.
const HexLength = 64

// Compute returns the appsecret proof for the given credential pair: the
// lowercase hex encoding of HMAC-SHA256 with appSecret as the key and
// accessToken as the message. An empty appSecret or accessToken is rejected,
// since the keyed hash needs both a key and a message to prove anything.
func Compute(appSecret, accessToken string) (string, error) {
	if err := ValidateCredentialPair(appSecret, accessToken); err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ValidateCredentialPair checks that the credential pair can feed the keyed
// hash. Callers must supply both values or neither; this catches the "secret
// without token" misconfiguration before any client is built.
func ValidateCredentialPair(appSecret, accessToken string) error {
	if appSecret == "" {
		return &sessionerrors.ProofInputError{Reason: "application secret is empty"}
	}
	if accessToken == "" {
		return &sessionerrors.ProofInputError{Reason: "access token is required when an application secret is set"}
	}
	return nil
}

// IsWellFormed reports whether s looks like an encoded proof: exactly
// HexLength lowercase hexadecimal characters.
func IsWellFormed(s string) bool {
	if len(s) != HexLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
