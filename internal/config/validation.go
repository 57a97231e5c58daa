package config

import "fmt"

// ValidationResult separates hard errors (the snapshot is still usable,
// but something was flatly wrong, e.g. a malformed color) from soft
// warnings (an unusual value that was silently replaced by a default).
// This mirrors the teacher's validateConfig/validateHistory pattern
// (internal/infrastructure/config/validation.go) but splits severities,
// since the spec (§4.1, §7) requires errors and warnings to be reported
// and handled differently: errors are logged but the snapshot is still
// published; warnings additionally imply a use-site fallback occurred.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation produced no hard errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs every validation rule in §4.1 against cfg and returns the
// categorized results. It never mutates cfg; fallback substitution happens
// at module-construction use-sites, not here.
func Validate(cfg *Config) ValidationResult {
	var r ValidationResult

	validateColor(&r, "background", cfg.Background)
	validateColor(&r, "text", cfg.Text)
	validateColor(&r, "border", cfg.Border)
	validateColor(&r, "popup_background", cfg.PopupBackground)
	validateColor(&r, "popup_text", cfg.PopupText)
	validateColor(&r, "muted", cfg.Muted)
	validateColor(&r, "accent", cfg.Accent)
	validateColor(&r, "destructive", cfg.Destructive)
	validateColor(&r, "success", cfg.Success)
	validateColor(&r, "warning", cfg.Warning)

	validateGeometry(&r, cfg)

	if cfg.Notch.Enabled {
		validateColor(&r, "notch.color", cfg.Notch.Color)
		if cfg.Notch.Width < 0 {
			r.Errors = append(r.Errors, "notch.width must be non-negative")
		}
	}

	for half, zones := range map[string]Half{"left": cfg.Modules.Left, "right": cfg.Modules.Right} {
		validateZone(&r, half+".outer", zones.Outer)
		validateZone(&r, half+".inner", zones.Inner)
	}

	return r
}

func validateColor(r *ValidationResult, field, value string) {
	if value == "" {
		return
	}
	if _, ok := parseHexLocal(value); !ok {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: invalid hex color %q", field, value))
	}
}

func validateGeometry(r *ValidationResult, cfg *Config) {
	if cfg.Bar.Padding < 0 {
		r.Errors = append(r.Errors, "bar.padding must be non-negative")
	}
	if cfg.Bar.BorderWidth < 0 {
		r.Errors = append(r.Errors, "bar.border_width must be non-negative")
	}
	if cfg.Bar.BorderRadius < 0 {
		r.Errors = append(r.Errors, "bar.border_radius must be non-negative")
	}
}

func validateZone(r *ValidationResult, path string, mods []ModuleConfig) {
	for i := range mods {
		validateModule(r, fmt.Sprintf("%s[%d]", path, i), &mods[i])
	}
}

func validateModule(r *ValidationResult, path string, m *ModuleConfig) {
	if !KnownModuleTypes[m.Type] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s.type: unknown module type %q, skipped", path, m.Type))
	}
	if m.SeparatorType != "" && !knownSeparatorTypes[m.SeparatorType] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s.separator_type: unknown %q, using default", path, m.SeparatorType))
	}
	if m.Popup != "" && !knownPopupKinds[m.Popup] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s.popup: unknown %q, popup disabled", path, m.Popup))
	}
	if m.PopupAnchor != "" && !knownAligns[m.PopupAnchor] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s.popup_anchor: unknown %q, using left", path, m.PopupAnchor))
	}
	if m.LabelAlign != "" && !knownAligns[m.LabelAlign] {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s.label_align: unknown %q, using left", path, m.LabelAlign))
	}

	validateColor(r, path+".color", m.Color)
	validateColor(r, path+".background", m.Background)
	validateColor(r, path+".border_color", m.BorderColor)
	validateColor(r, path+".critical_color", m.CriticalColor)
	validateColor(r, path+".warning_color", m.WarningColor)
	validateColor(r, path+".active_text_color", m.ActiveTextColor)
	validateColor(r, path+".active_background", m.ActiveBackground)
	validateColor(r, path+".separator_color", m.SeparatorColor)

	if m.BorderWidth < 0 {
		r.Errors = append(r.Errors, path+".border_width must be non-negative")
	}
	if m.CornerRadius < 0 {
		r.Errors = append(r.Errors, path+".corner_radius must be non-negative")
	}
	if m.Padding < 0 {
		r.Errors = append(r.Errors, path+".padding must be non-negative")
	}

	if m.CriticalThreshold != 0 && (m.CriticalThreshold < 0 || m.CriticalThreshold > 100) {
		r.Warnings = append(r.Warnings, path+".critical_threshold out of range 0..=100, ignored")
	}
	if m.WarningThreshold != 0 && (m.WarningThreshold < 0 || m.WarningThreshold > 100) {
		r.Warnings = append(r.Warnings, path+".warning_threshold out of range 0..=100, ignored")
	}
	if m.PopupMaxHeight < 0 {
		r.Warnings = append(r.Warnings, path+".popup_max_height must be non-negative, ignored")
	}

	if m.Type == ModuleScript && m.ScriptCommand == "" {
		r.Warnings = append(r.Warnings, path+": script module has no command, using stub output")
	}
	if m.Type == ModuleStatic && m.StaticText == "" && m.ScriptIcon == "" {
		r.Warnings = append(r.Warnings, path+": static module has neither text nor icon")
	}
}

// parseHexLocal avoids an import cycle with the theme package (which
// would otherwise need to import config for Tokens); it duplicates only
// the grammar check, not the color math.
func parseHexLocal(s string) (struct{}, bool) {
	if len(s) == 0 || s[0] != '#' {
		return struct{}{}, false
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return struct{}{}, false
	}
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return struct{}{}, false
		}
	}
	return struct{}{}, true
}
