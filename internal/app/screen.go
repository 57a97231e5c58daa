package app

import (
	"os"
	"strconv"

	"github.com/barstatus/barstatus/internal/config"
)

// Screen describes the display geometry the App shell lays its windows
// out against (§4.9 step 2). Querying the real notch/safe-area geometry
// is an OS-level concern outside any GUI toolkit binding available here,
// so it sits behind the ScreenProvider interface the same way the rest
// of the module treats platform queries as opaque.
type Screen struct {
	Width, Height  float64
	HasNotch       bool
	NotchWidth     float64
	LeftAreaWidth  float64
	RightAreaWidth float64
	MenuBarHeight  float64
}

// ScreenProvider supplies the current screen geometry.
type ScreenProvider interface {
	Query() Screen
}

// envScreenProvider resolves screen geometry from config.Notch overrides
// and BARSTATUS_SCREEN_* environment variables, falling back to a
// reasonable built-in desktop default. Production builds on real
// hardware would replace this with a platform-specific provider that
// reads the OS's safeAreaInsets; this one keeps the shell runnable and
// testable without one.
type envScreenProvider struct {
	cfg *config.Config
}

// NewScreenProvider creates the default ScreenProvider.
func NewScreenProvider(cfg *config.Config) ScreenProvider {
	return &envScreenProvider{cfg: cfg}
}

func (p *envScreenProvider) Query() Screen {
	width := envFloat("BARSTATUS_SCREEN_WIDTH", 1920)
	height := envFloat("BARSTATUS_SCREEN_HEIGHT", 1080)
	menuBarHeight := envFloat("BARSTATUS_MENU_BAR_HEIGHT", 24)

	s := Screen{Width: width, Height: height, MenuBarHeight: menuBarHeight}

	if p.cfg.Notch.Enabled {
		s.HasNotch = true
		s.NotchWidth = p.cfg.Notch.Width
	} else {
		s.NotchWidth = envFloat("BARSTATUS_NOTCH_WIDTH", 0)
		s.HasNotch = s.NotchWidth > 0
	}

	if s.HasNotch {
		s.LeftAreaWidth = (width - s.NotchWidth) / 2
		s.RightAreaWidth = (width - s.NotchWidth) / 2
	} else {
		s.LeftAreaWidth = width
		s.RightAreaWidth = 0
	}
	return s
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// ResolveBarHeight parses BarGeometry.Height ("auto" or a pixel integer
// string, §3) against the queried screen's menu bar height.
func ResolveBarHeight(cfg *config.Config, screen Screen) float64 {
	if cfg.Bar.Height == "auto" {
		return screen.MenuBarHeight
	}
	v, err := strconv.ParseFloat(cfg.Bar.Height, 64)
	if err != nil || v <= 0 {
		return screen.MenuBarHeight
	}
	return v
}
