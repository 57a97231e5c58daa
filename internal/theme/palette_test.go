package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFallsBackOnMalformedColor(t *testing.T) {
	th := Resolve(Tokens{Background: "garbage"})
	assert.Equal(t, defaultDark().Background, th.Background)
}

func TestResolveUsesProvidedColors(t *testing.T) {
	th := Resolve(Tokens{Text: "#ff0000"})
	c, _ := ParseHex("#ff0000")
	assert.Equal(t, c, th.Foreground)
}

func TestResolveDerivesSurfaceHoverAndPressed(t *testing.T) {
	th := Resolve(Tokens{Card: "#202020"})
	base, _ := ParseHex("#202020")
	assert.Equal(t, Lighten(base, 0.05), th.SurfaceHover)
	assert.Equal(t, Darken(base, 0.05), th.SurfacePressed)
}

func TestHeadingSizeClampsAndMaps(t *testing.T) {
	assert.Equal(t, SizeXl4, HeadingSize(1))
	assert.Equal(t, SizeBase, HeadingSize(6))
	assert.Equal(t, SizeXl4, HeadingSize(0))
	assert.Equal(t, SizeBase, HeadingSize(9))
}

func TestPointSizeScalesFromBase(t *testing.T) {
	th := Theme{FontSize: 16}
	assert.InDelta(t, 16, th.PointSize(SizeBase), 0.001)
	assert.InDelta(t, 36, th.PointSize(SizeXl4), 0.001)
}
