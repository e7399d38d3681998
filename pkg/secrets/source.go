// Package secrets provides flat, string-keyed secret sources for the
// gateway's config resolver.
//
// A Source is a read-only lookup consulted only during config resolution.
// Absence of a secret is not an error at the source level; the gateway
// decides when a missing secret becomes fatal (a client cannot be built
// without an API key).
package secrets

// Source retrieves secret values by name.
//
// Implementations include environment variables and in-memory maps for
// tests. Lookups must be cheap and side-effect-free: the config resolver is
// a pure function over (registry entry, Source).
type Source interface {
	// Lookup returns the value for the named secret.
	// The second return value is false when the secret is absent.
	Lookup(name string) (string, bool)
}
