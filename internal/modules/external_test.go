package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

func TestValidHexOrEmptyAcceptsValidHex(t *testing.T) {
	assert.Equal(t, "#ff0000", validHexOrEmpty("#ff0000"))
}

func TestValidHexOrEmptyRejectsGarbage(t *testing.T) {
	assert.Equal(t, "", validHexOrEmpty("not-a-color"))
}

func TestValidHexOrEmptyPassesThroughEmpty(t *testing.T) {
	assert.Equal(t, "", validHexOrEmpty(""))
}

func TestExternalSetPropertyInvalidHexClearsField(t *testing.T) {
	e := NewExternal("ext-test-invalid-hex")
	defer e.Stop()

	assert.True(t, e.SetProperty("color", "#00ff00"))
	assert.True(t, e.SetProperty("color", "garbage"))

	snap := e.state.Snapshot()
	assert.Equal(t, "", snap.Foreground)
}

func TestExternalSetPropertyUnknownKeyReturnsFalse(t *testing.T) {
	e := NewExternal("ext-test-unknown-key")
	defer e.Stop()

	assert.False(t, e.SetProperty("bogus", "value"))
}

func TestExternalRenderHiddenWhileNotDrawing(t *testing.T) {
	e := NewExternal("ext-test-render-hidden")
	defer e.Stop()

	assert.Equal(t, uitree.Node{}, e.Render(theme.Theme{}))
}

func TestExternalRenderShowsLabelAndIconWhenDrawing(t *testing.T) {
	e := NewExternal("ext-test-render-visible")
	defer e.Stop()

	e.SetProperty("label", "CPU 12%")
	e.SetProperty("icon", "cpu")
	e.SetProperty("drawing", "true")

	node := e.Render(theme.Theme{})
	assert.NotEmpty(t, node.Children)
}
