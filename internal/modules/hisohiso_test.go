package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

func TestHisohisoRendersEmptyWhileIdle(t *testing.T) {
	h := NewHisohiso("hisohiso-test-idle")
	defer h.Stop()

	node := h.Render(theme.Theme{})
	assert.Equal(t, uitree.Node{}, node)
}

func TestHisohisoSetLevelsTransitionsOutOfIdle(t *testing.T) {
	h := NewHisohiso("hisohiso-test-levels")
	defer h.Stop()

	h.SetLevels([]int{10, 200, -5, 50, 0, 0, 0})

	node := h.Render(theme.Theme{})
	assert.Len(t, node.Children, hisohisoBars)
	assert.InDelta(t, 0.1, node.Children[0].Value, 0.001)
	assert.InDelta(t, 1.0, node.Children[1].Value, 0.001) // clamped 200 -> 100
	assert.InDelta(t, 0.0, node.Children[2].Value, 0.001) // clamped -5 -> 0
}

func TestHisohisoSetStateIdleClearsLevels(t *testing.T) {
	h := NewHisohiso("hisohiso-test-setstate")
	defer h.Stop()

	h.SetLevels([]int{80, 80, 80, 80, 80, 80, 80})
	h.SetState(DictationIdle)

	node := h.Render(theme.Theme{})
	assert.Equal(t, uitree.Node{}, node)
}

func TestHisohisoBroadcastReachesAllLiveInstances(t *testing.T) {
	a := NewHisohiso("hisohiso-broadcast-a")
	b := NewHisohiso("hisohiso-broadcast-b")
	defer a.Stop()
	defer b.Stop()

	BroadcastDictationLevels([]int{100, 0, 0, 0, 0, 0, 0})

	for _, h := range []*Hisohiso{a, b} {
		node := h.Render(theme.Theme{})
		assert.InDelta(t, 1.0, node.Children[0].Value, 0.001)
	}
}
