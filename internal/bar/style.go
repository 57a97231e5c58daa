// Package bar implements the zone-based bar view (C8, §4.7): per-half
// layout with outer/inner zones, threshold-driven text coloring, and the
// 500ms refresh tick that polls every module and the config watcher.
package bar

import (
	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Style is the resolved subset of a ModuleConfig's visual overrides a
// PositionedModule carries, with raw hex strings already separated from
// the closed-vocabulary fields validation already checked.
type Style struct {
	TextColor        string
	Background       string
	BorderColor      string
	BorderWidth      float64
	CornerRadius     float64
	Padding          float64
	CriticalColor    string
	WarningColor     string
	ActiveTextColor  string
	ActiveBackground string
}

// PositionedModule pairs a module with its resolved style and layout
// constraints, owned exclusively by the bar view (§4.7 "PositionedModule").
type PositionedModule struct {
	Module modules.Module
	Cfg    config.ModuleConfig
	Style  Style

	Toggled bool
}

// ResolveTextColor implements §4.7 step 2's precedence: critical below
// threshold, then warning below threshold, then active-toggle override,
// then the module's own text color, then theme.Foreground.
func ResolveTextColor(pm PositionedModule, th theme.Theme) theme.Color {
	if value, ok := pm.Module.Value(); ok {
		if pm.Cfg.CriticalThreshold > 0 && pm.Cfg.CriticalThreshold <= 100 && value < pm.Cfg.CriticalThreshold {
			return pickHex(pm.Style.CriticalColor, th.Destructive)
		}
		if pm.Cfg.WarningThreshold > 0 && pm.Cfg.WarningThreshold <= 100 && value < pm.Cfg.WarningThreshold {
			return pickHex(pm.Style.WarningColor, th.Warning)
		}
	}
	if pm.Toggled && pm.Style.ActiveTextColor != "" {
		return pickHex(pm.Style.ActiveTextColor, th.Foreground)
	}
	return pickHex(pm.Style.TextColor, th.Foreground)
}

func pickHex(raw string, fallback theme.Color) theme.Color {
	if raw == "" {
		return fallback
	}
	c, ok := theme.ParseHex(raw)
	if !ok {
		return fallback
	}
	return c
}

// Wrap applies §4.7 step 3's container styling around a module's rendered
// content: the resolved text color and the (active) background, with
// Style.Padding set as the container's child gap. CornerRadius,
// BorderColor and BorderWidth are not applied.
func Wrap(pm PositionedModule, th theme.Theme, content uitree.Node) uitree.Node {
	textColor := ResolveTextColor(pm, th)
	content.Color = theme.FormatHex(textColor)

	bg := pm.Style.Background
	if pm.Toggled && pm.Style.ActiveBackground != "" {
		bg = pm.Style.ActiveBackground
	}
	background := ""
	if bg != "" {
		if c, ok := theme.ParseHex(bg); ok {
			background = theme.FormatHex(c)
		}
	}

	container := uitree.Row(0, content)
	container.Background = background
	container.Gap = pm.Style.Padding
	_, hasPopup := pm.Module.PopupSpec()
	container.Flex = hasPopup || pm.Cfg.ClickCommand != ""
	return container
}
