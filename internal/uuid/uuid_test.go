package uuid

import (
	"regexp"
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	u := NewUUID()

	short := u.Short()
	if len(short) != 8 {
		t.Fatalf("Short() length = %d; want 8", len(short))
	}
	if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(short) {
		t.Errorf("Short() = %q; want 8 lowercase hex characters", short)
	}

	full := strings.ReplaceAll(u.String(), "-", "")
	if !strings.HasPrefix(full, short) {
		t.Errorf("Short() = %q is not a prefix of %q", short, full)
	}
}

func TestNewUUID_Unique(t *testing.T) {
	a := NewUUID()
	b := NewUUID()
	if a.String() == b.String() {
		t.Errorf("two generated UUIDs are identical: %s", a)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	u := NewUUID()

	text, err := u.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}

	var back UUID
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if back.String() != u.String() {
		t.Errorf("round trip = %s; want %s", back, u)
	}
}

func TestUnmarshalText_Invalid(t *testing.T) {
	var u UUID
	if err := u.UnmarshalText([]byte("not-a-uuid")); err == nil {
		t.Error("expected error for invalid UUID text, got nil")
	}
}
