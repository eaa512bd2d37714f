// redact.go
package params

// sensitiveKeys are parameter names whose values never belong in logs.
var sensitiveKeys = map[string]bool{
	AccessTokenKey:    true,
	AppSecretProofKey: true,
}

// RedactSensitiveParamData redacts a parameter value based on the hideSensitiveData flag.
func RedactSensitiveParamData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && sensitiveKeys[key] {
		return "REDACTED"
	}
	return value
}

// RedactedCopy returns a copy of the table with sensitive values replaced,
// suitable for inclusion in log fields.
func (p Params) RedactedCopy(hideSensitiveData bool) Params {
	clone := make(Params, len(p))
	for k, v := range p {
		clone[k] = RedactSensitiveParamData(hideSensitiveData, k, v)
	}
	return clone
}
