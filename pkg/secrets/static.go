package secrets

// StaticSource serves secrets from an in-memory map.
//
// It is used by tests and by embedders that resolve secrets through their
// own machinery before handing them to the gateway. The map is not copied;
// callers must not mutate it after construction.
type StaticSource struct {
	values map[string]string
}

// NewStaticSource creates a map-backed secret source.
func NewStaticSource(values map[string]string) *StaticSource {
	if values == nil {
		values = map[string]string{}
	}
	return &StaticSource{values: values}
}

// Lookup returns the mapped value for the named secret.
func (s *StaticSource) Lookup(name string) (string, bool) {
	value, ok := s.values[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
