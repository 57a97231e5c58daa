package modules

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	sensorsutil "github.com/shirou/gopsutil/v4/sensors"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Temperature polls a temperature reading every second. It tries two
// backends in order (§4.4 "Tries two backends"): gopsutil's sensors
// package first, taking the first sensor with a positive reading (sensor
// keys are not filtered), falling back to a shell query when no sensor
// reports one. value() maps 30..=100°C onto 100..=0, clamped,
// so "hot is bad" renders through the shared threshold rule without the
// module itself inverting the number it stores.
type Temperature struct {
	Base

	mu        sync.RWMutex
	celsius   float64
	haveVal   bool
}

// NewTemperature creates a Temperature module and starts its 1s producer.
func NewTemperature(id string) *Temperature {
	t := &Temperature{Base: NewBase(id)}
	t.RunProducer(time.Second, t.fetch)
	return t
}

func (t *Temperature) fetch() {
	celsius, ok := t.fetchGopsutil()
	if !ok {
		celsius, ok = t.fetchShell()
	}
	if !ok {
		return
	}

	t.mu.Lock()
	changed := !t.haveVal || celsius != t.celsius
	t.celsius = celsius
	t.haveVal = true
	t.mu.Unlock()

	if changed {
		t.MarkDirty()
	}
}

func (t *Temperature) fetchGopsutil() (float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 800*time.Millisecond)
	defer cancel()

	sensors, err := sensorsutil.TemperaturesWithContext(ctx)
	if err != nil {
		return 0, false
	}
	for _, s := range sensors {
		if s.Temperature > 0 {
			return s.Temperature, true
		}
	}
	return 0, false
}

func (t *Temperature) fetchShell() (float64, bool) {
	out, err := runShell("osx-cpu-temp")
	if err != nil {
		return 0, false
	}
	var numeric string
	for _, r := range out {
		if (r >= '0' && r <= '9') || r == '.' {
			numeric += string(r)
		} else {
			break
		}
	}
	v, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Value implements the 30..=100°C -> 100..=0 linear map, clamped.
func (t *Temperature) Value() (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.haveVal {
		return 0, false
	}
	return tempToValue(t.celsius), true
}

func tempToValue(celsius float64) float64 {
	v := 100 - (celsius-30)*(100.0/70.0)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return v
}

func (t *Temperature) Render(theme.Theme) uitree.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.haveVal {
		return LoadingSkeleton(32, 14)
	}
	return uitree.Text(fmt.Sprintf("%.0f°C", t.celsius))
}
