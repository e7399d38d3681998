package secrets

import "os"

// EnvSource reads secrets from environment variables.
//
// Secret names are used verbatim as environment variable names, optionally
// namespaced with a configured prefix. Registry secret refs already follow
// environment naming conventions ("OPENAI_API_KEY"), so no case or
// separator mangling is applied.
type EnvSource struct {
	// Prefix is prepended to every secret name before lookup.
	// With prefix "PRISM_", the secret "OPENAI_API_KEY" is read from
	// the environment variable "PRISM_OPENAI_API_KEY".
	Prefix string
}

// NewEnvSource creates an environment-backed secret source.
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{Prefix: prefix}
}

// Lookup reads the named secret from the environment.
// Empty values are treated as absent: an empty API key can never
// authenticate, and placeholder substitution already maps absence to "".
func (s *EnvSource) Lookup(name string) (string, bool) {
	value := os.Getenv(s.Prefix + name)
	if value == "" {
		return "", false
	}
	return value, true
}
