package secrets

import "testing"

func TestEnvSourceLookup(t *testing.T) {
	t.Setenv("PRISM_TEST_API_KEY", "sk-test-123")

	src := NewEnvSource("")
	value, ok := src.Lookup("PRISM_TEST_API_KEY")
	if !ok {
		t.Fatal("Lookup reported secret absent")
	}
	if value != "sk-test-123" {
		t.Errorf("Lookup = %q, want %q", value, "sk-test-123")
	}
}

func TestEnvSourcePrefix(t *testing.T) {
	t.Setenv("PRISM_OPENAI_API_KEY", "sk-prefixed")

	src := NewEnvSource("PRISM_")
	value, ok := src.Lookup("OPENAI_API_KEY")
	if !ok || value != "sk-prefixed" {
		t.Errorf("Lookup = %q, %v; want %q, true", value, ok, "sk-prefixed")
	}
}

func TestEnvSourceAbsentAndEmpty(t *testing.T) {
	t.Setenv("PRISM_EMPTY_KEY", "")

	src := NewEnvSource("")
	if _, ok := src.Lookup("PRISM_NO_SUCH_KEY"); ok {
		t.Error("Lookup reported an unset variable as present")
	}
	if _, ok := src.Lookup("PRISM_EMPTY_KEY"); ok {
		t.Error("Lookup reported an empty variable as present")
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(map[string]string{
		"OPENAI_API_KEY": "sk-static",
		"EMPTY":          "",
	})

	if value, ok := src.Lookup("OPENAI_API_KEY"); !ok || value != "sk-static" {
		t.Errorf("Lookup = %q, %v; want %q, true", value, ok, "sk-static")
	}
	if _, ok := src.Lookup("EMPTY"); ok {
		t.Error("Lookup reported an empty value as present")
	}
	if _, ok := src.Lookup("MISSING"); ok {
		t.Error("Lookup reported a missing value as present")
	}
}
