package runtime

import "github.com/lumen-ai/prism/pkg/registry"

// ValidateModel checks a (provider, model) pair against the registry.
//
// The valid model set is the provider's default model plus its free models;
// paid models are listed for display only and are not requestable. Infra
// providers with no enumerable models therefore reject every model.
//
// Validation runs before any credential is read or client is built:
// malformed requests must never trigger credential resolution or network
// I/O. Returns nil on success and a *ValidationError on rejection.
func ValidateModel(reg *registry.Registry, id registry.ProviderID, model string) error {
	entry, ok := reg.Get(id)
	if !ok {
		return &ValidationError{Provider: id, Reason: ReasonUnknownProvider}
	}

	if model == "" {
		return &ValidationError{Provider: id, Model: model, Reason: ReasonUnknownModel}
	}

	for _, valid := range entry.Models() {
		if model == valid {
			return nil
		}
	}

	return &ValidationError{Provider: id, Model: model, Reason: ReasonUnknownModel}
}
