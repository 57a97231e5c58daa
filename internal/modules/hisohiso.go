package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// hisohisoBars is the fixed number of waveform bars rendered (§4.4
// supplement: "7-bar waveform").
const hisohisoBars = 7

// hisohisoIdleDecay is how long without a `levels` push before the
// waveform decays back to silence (§4.4 supplement).
const hisohisoIdleDecay = 750 * time.Millisecond

// DictationState enumerates the hisohiso socket's `state` command values
// (§6: "state {idle|recording|transcribing|error}").
type DictationState string

const (
	DictationIdle         DictationState = "idle"
	DictationRecording    DictationState = "recording"
	DictationTranscribing DictationState = "transcribing"
	DictationError        DictationState = "error"
)

// Hisohiso renders a live dictation waveform pushed entirely by the
// hisohiso IPC socket (`state`/`levels` commands); it has no polling
// producer of its own. Levels decay to zero if no push arrives within
// hisohisoIdleDecay, so a crashed/stalled dictation process doesn't
// leave a stuck waveform on the bar.
type Hisohiso struct {
	Base

	mu       sync.RWMutex
	state    DictationState
	levels   [hisohisoBars]float64
	lastPush time.Time

	stopCh chan struct{}
}

// NewHisohiso creates a Hisohiso module and starts its idle-decay
// watchdog.
func NewHisohiso(id string) *Hisohiso {
	h := &Hisohiso{Base: NewBase(id), state: DictationIdle, stopCh: make(chan struct{})}
	registerHisohiso(h)
	go h.watchIdle()
	return h
}

// hisohisoInstances tracks every live Hisohiso module, mirroring
// externalStates' registry pattern (internal/modules/external_state.go):
// the dictation socket (C6's sibling HisohisoServer) has no module id of
// its own to look anything up by, so every push fans out to whichever
// Hisohiso instances the current bar config happens to contain.
var (
	hisohisoMu        sync.RWMutex
	hisohisoInstances = make(map[*Hisohiso]struct{})
)

func registerHisohiso(h *Hisohiso) {
	hisohisoMu.Lock()
	hisohisoInstances[h] = struct{}{}
	hisohisoMu.Unlock()
}

func unregisterHisohiso(h *Hisohiso) {
	hisohisoMu.Lock()
	delete(hisohisoInstances, h)
	hisohisoMu.Unlock()
}

// BroadcastDictationState applies state to every live Hisohiso instance
// (the hisohiso socket's `state` push, §6).
func BroadcastDictationState(state DictationState) {
	hisohisoMu.RLock()
	defer hisohisoMu.RUnlock()
	for h := range hisohisoInstances {
		h.SetState(state)
	}
}

// BroadcastDictationLevels applies levels to every live Hisohiso instance
// (the hisohiso socket's `levels` push, §6).
func BroadcastDictationLevels(levels []int) {
	hisohisoMu.RLock()
	defer hisohisoMu.RUnlock()
	for h := range hisohisoInstances {
		h.SetLevels(levels)
	}
}

func (h *Hisohiso) watchIdle() {
	ticker := time.NewTicker(hisohisoIdleDecay / 3)
	defer ticker.Stop()
	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			if !h.IsCurrentGeneration() {
				return
			}
			h.mu.Lock()
			idle := h.state != DictationIdle && time.Since(h.lastPush) > hisohisoIdleDecay
			if idle {
				h.levels = [hisohisoBars]float64{}
				h.state = DictationIdle
			}
			h.mu.Unlock()
			if idle {
				h.MarkDirty()
			}
		}
	}
}

// SetState handles the hisohiso socket's `state` command (§6:
// idle|recording|transcribing|error). Moving to idle hides the waveform
// immediately; any other value shows it.
func (h *Hisohiso) SetState(state DictationState) {
	h.mu.Lock()
	changed := h.state != state
	h.state = state
	if state == DictationIdle {
		h.levels = [hisohisoBars]float64{}
	}
	h.mu.Unlock()
	if changed {
		h.MarkDirty()
	}
}

// SetLevels handles the hisohiso socket's `levels` command: up to
// hisohisoBars ints in 0..=100 (§6), clamped/padded and normalized to
// [0,1] for rendering.
func (h *Hisohiso) SetLevels(levels []int) {
	var next [hisohisoBars]float64
	for i := 0; i < hisohisoBars && i < len(levels); i++ {
		v := levels[i]
		if v < 0 {
			v = 0
		} else if v > 100 {
			v = 100
		}
		next[i] = float64(v) / 100
	}
	h.mu.Lock()
	h.levels = next
	if h.state == DictationIdle {
		h.state = DictationRecording
	}
	h.lastPush = time.Now()
	h.mu.Unlock()
	h.MarkDirty()
}

func (h *Hisohiso) Render(theme.Theme) uitree.Node {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.state == DictationIdle {
		return uitree.Node{}
	}
	bars := make([]uitree.Node, hisohisoBars)
	for i, v := range h.levels {
		bars[i] = uitree.Node{Kind: uitree.KindProgressBar, Value: v}
	}
	return uitree.Row(2, bars...)
}

func (h *Hisohiso) Stop() {
	h.Base.Stop()
	unregisterHisohiso(h)
	select {
	case <-h.stopCh:
	default:
		close(h.stopCh)
	}
}
