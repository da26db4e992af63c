package objectid

import (
	"strings"
	"testing"
)

func TestNewShape(t *testing.T) {
	id := New()
	if len(id) != 24 {
		t.Fatalf("expected 24 chars, got %d (%q)", len(id), id)
	}
	if id != strings.ToLower(id) {
		t.Fatalf("expected lowercase hex, got %q", id)
	}
	if !IsValid(id) {
		t.Fatalf("generated id %q does not validate", id)
	}
}

func TestNewUniqueness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"65f0a1b2c3d4e5f6a7b8c9d0", true},
		{"65f0a1b2c3d4e5f6a7b8c9d", false},   // too short
		{"65f0a1b2c3d4e5f6a7b8c9d0a", false}, // too long
		{"65f0a1b2c3d4e5f6a7b8c9zz", false},  // not hex
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.in); got != tc.want {
			t.Fatalf("IsValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
