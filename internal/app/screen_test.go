package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/config"
)

func clearScreenEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BARSTATUS_SCREEN_WIDTH", "BARSTATUS_SCREEN_HEIGHT",
		"BARSTATUS_MENU_BAR_HEIGHT", "BARSTATUS_NOTCH_WIDTH",
	} {
		os.Unsetenv(k)
	}
}

func TestQueryNoNotchUsesFullWidth(t *testing.T) {
	clearScreenEnv(t)
	cfg := config.DefaultConfig()

	s := NewScreenProvider(cfg).Query()

	assert.False(t, s.HasNotch)
	assert.Equal(t, s.Width, s.LeftAreaWidth)
	assert.Equal(t, 0.0, s.RightAreaWidth)
}

func TestQueryConfigNotchOverrideSplitsAreas(t *testing.T) {
	clearScreenEnv(t)
	t.Setenv("BARSTATUS_SCREEN_WIDTH", "2000")
	cfg := config.DefaultConfig()
	cfg.Notch.Enabled = true
	cfg.Notch.Width = 200

	s := NewScreenProvider(cfg).Query()

	assert.True(t, s.HasNotch)
	assert.Equal(t, 200.0, s.NotchWidth)
	assert.Equal(t, 900.0, s.LeftAreaWidth)
	assert.Equal(t, 900.0, s.RightAreaWidth)
}

func TestQueryEnvNotchWidthEnablesNotch(t *testing.T) {
	clearScreenEnv(t)
	t.Setenv("BARSTATUS_SCREEN_WIDTH", "1000")
	t.Setenv("BARSTATUS_NOTCH_WIDTH", "100")
	cfg := config.DefaultConfig()

	s := NewScreenProvider(cfg).Query()

	assert.True(t, s.HasNotch)
	assert.Equal(t, 450.0, s.LeftAreaWidth)
	assert.Equal(t, 450.0, s.RightAreaWidth)
}

func TestResolveBarHeightAutoUsesScreenMenuBarHeight(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bar.Height = "auto"

	got := ResolveBarHeight(cfg, Screen{MenuBarHeight: 24})
	assert.Equal(t, 24.0, got)
}

func TestResolveBarHeightPixelStringOverridesDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bar.Height = "32"

	got := ResolveBarHeight(cfg, Screen{MenuBarHeight: 24})
	assert.Equal(t, 32.0, got)
}

func TestResolveBarHeightInvalidFallsBackToScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bar.Height = "not-a-number"

	got := ResolveBarHeight(cfg, Screen{MenuBarHeight: 24})
	assert.Equal(t, 24.0, got)
}
