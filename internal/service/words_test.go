package service

import (
	"strings"
	"testing"
)

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"disabled", "one two three", 0, "one two three"},
		{"negative disables", "one two three", -1, "one two three"},
		{"under limit", "one two", 5, "one two"},
		{"exact limit", "one two three", 3, "one two three"},
		{"cuts after limit", "one two three four", 2, "one two"},
		{"keeps paragraph breaks", "one\n\ntwo three", 2, "one\n\ntwo"},
		{"leading whitespace", "  one two", 1, "  one"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := TruncateWords(test.input, test.max)
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestTruncateWords_WordCount(t *testing.T) {
	long := strings.Repeat("word ", 450)
	result := TruncateWords(long, 300)
	if n := len(strings.Fields(result)); n != 300 {
		t.Errorf("Expected 300 words, got %d", n)
	}
}
