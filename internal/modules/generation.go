package modules

import "sync/atomic"

// generation is the process-global MODULE_GENERATION counter (§5):
// bumped every time the bar rebuilds, so every producer thread can
// notice its module is stale and exit within one cadence.
var generation atomic.Uint64

// BumpGeneration increments the global generation counter and returns the
// new value. Called once per bar rebuild (config reload or startup).
func BumpGeneration() uint64 {
	return generation.Add(1)
}

// CurrentGeneration returns the live generation counter value.
func CurrentGeneration() uint64 {
	return generation.Load()
}
