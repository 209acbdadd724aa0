package util

import (
	"regexp"
	"testing"
)

func TestGenerateShortID(t *testing.T) {
	t.Run("length is always 6", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(id) != 6 {
				t.Errorf("expected length 6, got %d for id %q", len(id), id)
			}
		}
	})

	t.Run("contains only alphanumeric characters", func(t *testing.T) {
		pattern := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
		for i := 0; i < 100; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !pattern.MatchString(id) {
				t.Errorf("id %q contains non-alphanumeric characters", id)
			}
		}
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id, err := GenerateShortID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[id] {
				t.Errorf("duplicate id generated: %q", id)
			}
			seen[id] = true
		}
	})
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"hello_world", "hello-world"},
		{"Hello---World", "hello-world"},
		{"  Hello  ", "hello"},
		{"Feature: Auth!", "feature-auth"},
		{"", ""},
		{"already-kebab", "already-kebab"},
		{"MixedCase_And Spaces", "mixedcase-and-spaces"},
		{"123 Numbers 456", "123-numbers-456"},
		{"---leading-trailing---", "leading-trailing"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := ToKebabCase(tc.input)
			if result != tc.expected {
				t.Errorf("ToKebabCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"Requirements gathering", 12, "Requireme..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 3, "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := Truncate(tc.input, tc.max)
			if result != tc.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.max, result, tc.expected)
			}
		})
	}
}
