// session_errors.go
// This package provides the structured error types surfaced while building a Graph API session.
package errors

import (
	"errors"
	"fmt"
)

// ConfigError represents a fatal configuration problem found while building a
// session, such as an unreadable certificate bundle or an invalid option value.
type ConfigError struct {
	Setting string // The configuration setting that failed (e.g., "ca_bundle_path")
	Err     error  // The underlying cause, if any
}

// Error returns a string representation of the ConfigError.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session configuration error (%s): %v", e.Setting, e.Err)
	}
	return fmt.Sprintf("session configuration error (%s)", e.Setting)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps err as a ConfigError for the given setting.
func NewConfigError(setting string, err error) *ConfigError {
	return &ConfigError{Setting: setting, Err: err}
}

// ProofInputError represents an invalid credential pairing for appsecret proof
// computation: an application secret was supplied without the access token the
// keyed hash needs as its message input.
type ProofInputError struct {
	Reason string
}

// Error returns a string representation of the ProofInputError.
func (e *ProofInputError) Error() string {
	return fmt.Sprintf("appsecret proof input error: %s", e.Reason)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsProofInputError reports whether err is (or wraps) a ProofInputError.
func IsProofInputError(err error) bool {
	var proofErr *ProofInputError
	return errors.As(err, &proofErr)
}
