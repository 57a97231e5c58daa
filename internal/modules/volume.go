package modules

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Volume polls the system output volume every 750ms. Mute is reported
// separately from level, per §4.4.
type Volume struct {
	Base

	mu      sync.RWMutex
	level   float64
	muted   bool
	haveVal bool
}

// NewVolume creates a Volume module and starts its 0.75s producer.
func NewVolume(id string) *Volume {
	v := &Volume{Base: NewBase(id)}
	v.RunProducer(750*time.Millisecond, v.fetch)
	return v
}

func (v *Volume) fetch() {
	out, err := runShell(`osascript -e 'output volume of (get volume settings)' -e 'output muted of (get volume settings)'`)
	if err != nil {
		return
	}
	lines := strings.Fields(out)
	if len(lines) < 2 {
		return
	}
	level, err := strconv.ParseFloat(lines[0], 64)
	if err != nil {
		return
	}
	muted := lines[1] == "true"

	v.mu.Lock()
	changed := !v.haveVal || level != v.level || muted != v.muted
	v.level = level
	v.muted = muted
	v.haveVal = true
	v.mu.Unlock()

	if changed {
		v.MarkDirty()
	}
}

func (v *Volume) Value() (float64, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.haveVal {
		return 0, false
	}
	return v.level, true
}

func (v *Volume) Render(theme.Theme) uitree.Node {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.haveVal {
		return LoadingSkeleton(28, 14)
	}
	icon := "speaker"
	if v.muted {
		icon = "speaker-mute"
	}
	return uitree.Row(4, uitree.Icon(icon), uitree.Text(fmt.Sprintf("%.0f%%", v.level)))
}
