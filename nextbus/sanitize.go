package nextbus

import (
	"math"
	"strconv"
	"strings"
)

// maxTextLen bounds every sanitized string field. Feed titles are short;
// anything longer is either corrupt or hostile.
const maxTextLen = 500

// SanitizeText converts a raw attribute value into safe display text. It
// strips ASCII control characters (tab, LF and CR survive), trims
// surrounding whitespace and truncates to 500 characters. It never fails;
// empty input yields "".
func SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			continue
		}
		if r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.TrimSpace(b.String())
	if runes := []rune(s); len(runes) > maxTextLen {
		s = string(runes[:maxTextLen])
	}
	return s
}

// SafeFloat parses a raw attribute as a float. Absent, non-numeric, NaN or
// infinite values yield def.
func SafeFloat(raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// SafeInt parses a raw attribute as a base-10 integer, yielding def on any
// failure.
func SafeInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SafeInt64 is SafeInt for 64-bit values such as epoch milliseconds.
func SafeInt64(raw string, def int64) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}

func safeBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(raw)))
	if err != nil {
		return false
	}
	return v
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func sanitizeColor(raw, def string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if !isHexColor(s) {
		return def
	}
	return strings.ToLower(s)
}
