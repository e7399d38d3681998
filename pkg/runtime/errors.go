package runtime

import (
	"fmt"

	"github.com/lumen-ai/prism/pkg/registry"
)

// ConfigurationError reports a resolution request for a provider that does
// not exist in the registry.
type ConfigurationError struct {
	// Provider is the unknown provider ID.
	Provider registry.ProviderID

	// Message describes the configuration problem.
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %q configuration error: %s", e.Provider, e.Message)
}

// MissingCredentialError reports that a client could not be constructed
// because the provider's API key is absent from the secret source.
//
// This is the one place where an absent secret becomes a hard error:
// resolution tolerates missing secrets, but a client cannot authenticate
// without one. It signals operator misconfiguration, not a caller mistake.
type MissingCredentialError struct {
	// Provider is the provider whose credential is missing.
	Provider registry.ProviderID

	// SecretRef is the name of the missing secret.
	SecretRef string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing API key for provider %q: set the %s secret", e.Provider, e.SecretRef)
}

// Validation rejection reasons.
const (
	ReasonUnknownProvider = "unknown provider"
	ReasonUnknownModel    = "unknown model for provider"
)

// ValidationError reports a (provider, model) pair that failed validation
// against the registry. It is always a caller mistake (HTTP 400) and is
// raised before any credential is read or any network client is built.
type ValidationError struct {
	// Provider is the requested provider ID.
	Provider registry.ProviderID

	// Model is the requested model, empty for provider-level rejections.
	Model string

	// Reason is one of the Reason* constants.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("invalid request: %s (provider %q, model %q)", e.Reason, e.Provider, e.Model)
	}
	return fmt.Sprintf("invalid request: %s (provider %q)", e.Reason, e.Provider)
}
