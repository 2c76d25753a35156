package uuid

import (
	"strings"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	a, b := New(), New()

	if a == b {
		t.Fatal("expected distinct ids")
	}
	parsed, err := googleuuid.Parse(a)
	if err != nil {
		t.Fatalf("expected valid uuid, got %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestParse(t *testing.T) {
	upper := strings.ToUpper(New())
	got, err := Parse(upper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != strings.ToLower(upper) {
		t.Errorf("expected normalized lower case, got %s", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
	if IsValid("123") {
		t.Error("expected 123 to be invalid")
	}
}
