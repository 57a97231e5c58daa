package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/theme"
)

// valueModule is a fixed-value stub module for resolving text colors.
type valueModule struct {
	stubModule
	value float64
	ok    bool
}

func (m valueModule) Value() (float64, bool) { return m.value, m.ok }

func TestResolveTextColorMemoryScenario(t *testing.T) {
	// §8 scenario 3: memory inverts usage into value = 100-usage, so
	// critical/warning compare against the HIGH end.
	th := theme.Resolve(theme.Tokens{})
	cfg := config.ModuleConfig{CriticalThreshold: 20, WarningThreshold: 40}

	for _, v := range []float64{90, 70, 50} {
		pm := PositionedModule{Module: valueModule{value: v, ok: true}, Cfg: cfg}
		got := ResolveTextColor(pm, th)
		assert.Equal(t, th.Foreground, got, "value=%v", v)
	}
}

func TestResolveTextColorBatteryScenario(t *testing.T) {
	// §8 scenario 3, battery variant: value is the raw level (not
	// inverted), so low values are literally the "bad" direction.
	th := theme.Resolve(theme.Tokens{})
	cfg := config.ModuleConfig{CriticalThreshold: 20, WarningThreshold: 40}

	pm := PositionedModule{Module: valueModule{value: 10, ok: true}, Cfg: cfg}
	assert.Equal(t, th.Destructive, ResolveTextColor(pm, th))

	pm = PositionedModule{Module: valueModule{value: 30, ok: true}, Cfg: cfg}
	assert.Equal(t, th.Warning, ResolveTextColor(pm, th))

	pm = PositionedModule{Module: valueModule{value: 50, ok: true}, Cfg: cfg}
	assert.Equal(t, th.Foreground, ResolveTextColor(pm, th))
}

func TestResolveTextColorCustomThresholdColors(t *testing.T) {
	th := theme.Resolve(theme.Tokens{})
	cfg := config.ModuleConfig{CriticalThreshold: 20, WarningThreshold: 40}
	style := Style{CriticalColor: "#ff00ff"}

	pm := PositionedModule{Module: valueModule{value: 5, ok: true}, Cfg: cfg, Style: style}
	got := ResolveTextColor(pm, th)
	want, _ := theme.ParseHex("#ff00ff")
	assert.Equal(t, want, got)
}

func TestResolveTextColorTogglePrecedence(t *testing.T) {
	th := theme.Resolve(theme.Tokens{})
	style := Style{ActiveTextColor: "#00ff00"}
	pm := PositionedModule{Module: valueModule{ok: false}, Style: style, Toggled: true}

	got := ResolveTextColor(pm, th)
	want, _ := theme.ParseHex("#00ff00")
	assert.Equal(t, want, got)
}
