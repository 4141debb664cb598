package nextbus

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "Main Street & College Ave",
			expected: "Main Street & College Ave",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Downtown Loop \t",
			expected: "Downtown Loop",
		},
		{
			name:     "control characters stripped",
			input:    "Cherry\x00\x01 Hall\x1f\x7f",
			expected: "Cherry Hall",
		},
		{
			name:     "vertical tab and form feed stripped",
			input:    "Lot\x0b\x0cA",
			expected: "LotA",
		},
		{
			name:     "interior newline survives",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeText(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSanitizeTextTruncates(t *testing.T) {
	long := strings.Repeat("x", 2000)
	result := SanitizeText(long)
	if len(result) != 500 {
		t.Errorf("expected 500 characters, got %d", len(result))
	}
}

func TestSanitizeTextNeverEmitsControlCharacters(t *testing.T) {
	var b strings.Builder
	for c := byte(0); c < 0x20; c++ {
		b.WriteByte(c)
	}
	b.WriteByte(0x7f)
	b.WriteString("ok")

	result := SanitizeText(b.String())
	for _, r := range result {
		if (r < 0x20 && r != '\t' && r != '\n' && r != '\r') || r == 0x7f {
			t.Fatalf("control character %#x survived sanitization", r)
		}
	}
	if !strings.Contains(result, "ok") {
		t.Errorf("printable text should survive, got %q", result)
	}
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      float64
		expected float64
	}{
		{name: "valid", input: "36.98501", def: 0, expected: 36.98501},
		{name: "negative", input: "-86.455", def: 0, expected: -86.455},
		{name: "whitespace padded", input: " 12.5 ", def: 0, expected: 12.5},
		{name: "empty uses default", input: "", def: 7.5, expected: 7.5},
		{name: "garbage uses default", input: "north", def: 1, expected: 1},
		{name: "NaN uses default", input: "NaN", def: 2, expected: 2},
		{name: "positive infinity uses default", input: "Inf", def: 3, expected: 3},
		{name: "negative infinity uses default", input: "-Inf", def: 4, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeFloat(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      int
		expected int
	}{
		{name: "valid", input: "270", def: 0, expected: 270},
		{name: "negative", input: "-5", def: 0, expected: -5},
		{name: "empty uses default", input: "", def: 9, expected: 9},
		{name: "float uses default", input: "3.5", def: 1, expected: 1},
		{name: "garbage uses default", input: "soon", def: 2, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeInt(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSanitizeColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid lowercase", input: "ff0000", expected: "ff0000"},
		{name: "valid uppercase normalized", input: "00FF00", expected: "00ff00"},
		{name: "leading hash stripped", input: "#123abc", expected: "123abc"},
		{name: "too short uses default", input: "fff", expected: DefaultRouteColor},
		{name: "non-hex uses default", input: "redish", expected: DefaultRouteColor},
		{name: "empty uses default", input: "", expected: DefaultRouteColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeColor(tt.input, DefaultRouteColor)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
