package theme

import (
	"fmt"
	"strings"
)

// Color is a parsed RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// hexDigits maps each valid input length to whether it carries alpha.
func hexDigits(s string) (digits string, hasAlpha bool, ok bool) {
	if len(s) == 0 || s[0] != '#' {
		return "", false, false
	}
	digits = s[1:]
	switch len(digits) {
	case 6:
		return digits, false, isHex(digits)
	case 8:
		return digits, true, isHex(digits)
	default:
		return "", false, false
	}
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" per the hex color grammar in
// the spec (§6). Returns ok=false for any non-conforming string.
func ParseHex(s string) (Color, bool) {
	digits, hasAlpha, ok := hexDigits(s)
	if !ok {
		return Color{}, false
	}
	r, _ := parseByte(digits[0:2])
	g, _ := parseByte(digits[2:4])
	b, _ := parseByte(digits[4:6])
	a := byte(255)
	if hasAlpha {
		a, _ = parseByte(digits[6:8])
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseByte(s string) (byte, error) {
	var v int
	_, err := fmt.Sscanf(s, "%02x", &v)
	return byte(v), err
}

// FormatHex renders c back to canonical form: lowercase 6-digit hex, with
// the alpha suffix suppressed when the color is fully opaque (Invariant P3).
func FormatHex(c Color) string {
	r := byte(clamp01(c.R) * 255)
	g := byte(clamp01(c.G) * 255)
	b := byte(clamp01(c.B) * 255)
	if c.A >= 1.0 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := byte(clamp01(c.A) * 255)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// CanonicalHex lowercases s and strips a trailing "ff" alpha suffix, giving
// the string that FormatHex(ParseHex(s)) would produce for a conforming s.
func CanonicalHex(s string) string {
	s = strings.ToLower(s)
	if len(s) == 9 && strings.HasSuffix(s, "ff") {
		s = s[:7]
	}
	return s
}

// WithAlpha returns c with its alpha channel replaced by a (clamped to
// [0,1]), used for overlay/popup backgrounds.
func WithAlpha(c Color, a float64) Color {
	c.A = clamp01(a)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lighten moves c toward white by amount in [0,1].
func Lighten(c Color, amount float64) Color {
	return Color{
		R: c.R + (1-c.R)*amount,
		G: c.G + (1-c.G)*amount,
		B: c.B + (1-c.B)*amount,
		A: c.A,
	}
}

// Darken moves c toward black by amount in [0,1].
func Darken(c Color, amount float64) Color {
	return Color{
		R: c.R * (1 - amount),
		G: c.G * (1 - amount),
		B: c.B * (1 - amount),
		A: c.A,
	}
}
