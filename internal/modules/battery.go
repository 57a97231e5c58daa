package modules

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

var batteryLineRe = regexp.MustCompile(`(\d{1,3})%;\s*(charging|discharging|charged|finishing charge)`)

// Battery polls charge level and charging state every 30 seconds via the
// OS power-management query, treated as an opaque shell data-fetch per
// the spec's Non-goal on module fetch command lines. value() reports the
// charge level directly (low is bad, matching §8 scenario 3).
type Battery struct {
	Base

	mu        sync.RWMutex
	level     float64
	charging  bool
	haveVal   bool
}

// NewBattery creates a Battery module and starts its 30s producer.
func NewBattery(id string) *Battery {
	b := &Battery{Base: NewBase(id)}
	b.RunProducer(30*time.Second, b.fetch)
	return b
}

func (b *Battery) fetch() {
	out, err := runShell("pmset -g batt")
	if err != nil {
		return
	}
	m := batteryLineRe.FindStringSubmatch(out)
	if m == nil {
		return
	}
	level, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return
	}
	charging := m[2] == "charging" || m[2] == "finishing charge"

	b.mu.Lock()
	changed := !b.haveVal || level != b.level || charging != b.charging
	b.level = level
	b.charging = charging
	b.haveVal = true
	b.mu.Unlock()

	if changed {
		b.MarkDirty()
	}
}

func (b *Battery) Value() (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.haveVal {
		return 0, false
	}
	return b.level, true
}

func (b *Battery) Render(theme.Theme) uitree.Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.haveVal {
		return LoadingSkeleton(32, 14)
	}
	icon := "battery"
	if b.charging {
		icon = "battery-charging"
	}
	return uitree.Row(4,
		uitree.Icon(icon),
		uitree.Text(fmt.Sprintf("%.0f%%", b.level)),
	)
}
