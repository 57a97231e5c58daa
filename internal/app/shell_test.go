package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/bar"
)

func TestBarWindowFramesNotchedScreenSplitsLeftAndRight(t *testing.T) {
	screen := Screen{
		HasNotch:       true,
		Width:          2000,
		NotchWidth:     200,
		LeftAreaWidth:  900,
		RightAreaWidth: 900,
	}

	slots := barWindowFrames(screen, 32)
	if assert.Len(t, slots, 2) {
		assert.Equal(t, bar.LayoutLeft, slots[0].layout)
		assert.Equal(t, 0.0, slots[0].frame.X)
		assert.Equal(t, 900.0, slots[0].frame.W)
		assert.Equal(t, 32.0, slots[0].frame.H)

		assert.Equal(t, bar.LayoutRight, slots[1].layout)
		assert.Equal(t, 1100.0, slots[1].frame.X) // 900 + 200 notch
		assert.Equal(t, 900.0, slots[1].frame.W)
	}
}

func TestBarWindowFramesNoNotchYieldsSingleFullWindow(t *testing.T) {
	screen := Screen{HasNotch: false, Width: 1600}

	slots := barWindowFrames(screen, 28)
	if assert.Len(t, slots, 1) {
		assert.Equal(t, bar.LayoutFull, slots[0].layout)
		assert.Equal(t, 1600.0, slots[0].frame.W)
		assert.Equal(t, 28.0, slots[0].frame.H)
	}
}
