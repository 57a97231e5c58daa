package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/popup"
)

func TestAnchorXCentersOnMouseX(t *testing.T) {
	spec := modules.PopupSpec{Width: 280}
	assert.Equal(t, 860.0, anchorX(spec, 1000, 1920))
}

func TestAnchorXClampsToLeftEdge(t *testing.T) {
	spec := modules.PopupSpec{Width: 280}
	assert.Equal(t, 0.0, anchorX(spec, 10, 1920))
}

func TestAnchorXClampsToRightEdge(t *testing.T) {
	spec := modules.PopupSpec{Width: 280}
	assert.Equal(t, 1640.0, anchorX(spec, 1910, 1920))
}

func TestAnchorXIgnoresAnchorKeyword(t *testing.T) {
	// §4.6's Popup positioning rule centers on the mouse regardless of
	// the module's configured anchor keyword.
	spec := modules.PopupSpec{Width: 200, Anchor: "left"}
	assert.Equal(t, 900.0, anchorX(spec, 1000, 2000))
}

// barFramesSnapshot/VisibleFrames only read plain fields, so a
// controller can be exercised without a real GTK display by
// constructing it (and its barWindowBinding entries) directly.
func TestBarFramesSnapshotReflectsRegisteredWindows(t *testing.T) {
	c := &controller{
		barWindows: []*barWindowBinding{
			{frame: popup.Frame{Tag: popup.WindowTag{Role: popup.RoleBar}, X: 0, Y: 0, W: 600, H: 32}},
			{frame: popup.Frame{Tag: popup.WindowTag{Role: popup.RoleBar}, X: 800, Y: 0, W: 600, H: 32}},
		},
	}

	got := c.barFramesSnapshot()
	assert.Len(t, got, 2)
	assert.Equal(t, 600.0, got[0].W)
	assert.Equal(t, 800.0, got[1].X)
}

func TestVisibleFramesReturnsCurrentFrames(t *testing.T) {
	frames := []popup.Frame{{X: 1, Y: 2, W: 3, H: 4}}
	c := &controller{currentFrames: frames}
	assert.Equal(t, frames, c.VisibleFrames())
}

func TestCursorAndClickOutsideMonitorsToggleState(t *testing.T) {
	c := &controller{}

	c.InstallCursorMonitor()
	assert.True(t, c.cursorTracking)
	c.RemoveCursorMonitor()
	assert.False(t, c.cursorTracking)

	called := false
	c.InstallClickOutsideMonitor(func(float64, float64) { called = true })
	assert.NotNil(t, c.onClickOutside)
	c.onClickOutside(0, 0)
	assert.True(t, called)

	c.RemoveClickOutsideMonitor()
	assert.Nil(t, c.onClickOutside)
}
