package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexRejectsNonConforming(t *testing.T) {
	_, ok := ParseHex("not-a-color")
	assert.False(t, ok)

	_, ok = ParseHex("#ff00")
	assert.False(t, ok)

	_, ok = ParseHex("#ggg000")
	assert.False(t, ok)
}

func TestParseHexAcceptsSixAndEightDigit(t *testing.T) {
	c, ok := ParseHex("#ff0000")
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 1.0, c.A, 0.001)

	c, ok = ParseHex("#00ff0080")
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.G, 0.001)
	assert.InDelta(t, 128.0/255.0, c.A, 0.01)
}

// TestFormatCanonicalRoundTrip is Invariant P3: for canonical hex strings,
// format(parse(s)) == canonical(s).
func TestFormatCanonicalRoundTrip(t *testing.T) {
	cases := []string{"#ff0000", "#00ff00ff", "#123abc"}
	for _, s := range cases {
		c, ok := ParseHex(s)
		require.True(t, ok, s)
		assert.Equal(t, CanonicalHex(s), FormatHex(c), s)
	}
}

// TestParseFormatRoundTrip is Invariant R3.
func TestParseFormatRoundTrip(t *testing.T) {
	cases := []string{"#ABCDEF", "#0a0a0bcc"}
	for _, s := range cases {
		c, ok := ParseHex(s)
		require.True(t, ok)
		c2, ok := ParseHex(FormatHex(c))
		require.True(t, ok)
		assert.InDelta(t, c.R, c2.R, 0.01)
		assert.InDelta(t, c.G, c2.G, 0.01)
		assert.InDelta(t, c.B, c2.B, 0.01)
		assert.InDelta(t, c.A, c2.A, 0.01)
	}
}

func TestWithAlpha(t *testing.T) {
	c, _ := ParseHex("#ffffff")
	c = WithAlpha(c, 0.5)
	assert.InDelta(t, 0.5, c.A, 0.001)
}
