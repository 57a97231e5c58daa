// Package theme resolves a configuration's color strings and typography
// settings into a concrete Theme used by the bar view, popup host, and
// every module's render path.
package theme

// Theme holds semantic color tokens and typography, resolved once per
// config snapshot (C3 in the component design).
type Theme struct {
	Background     Color
	Surface        Color
	SurfaceHover   Color
	SurfacePressed Color
	SurfaceActive  Color

	Foreground       Color
	ForegroundMuted  Color
	ForegroundSubtle Color

	Accent      Color
	Success     Color
	Warning     Color
	Destructive Color
	Info        Color

	OnAccent      Color
	OnSuccess     Color
	OnWarning     Color
	OnDestructive Color

	Border       Color
	BorderSubtle Color
	Shadow       Color

	FontSize   float64
	FontFamily string
}

// Tokens is the subset of raw configuration strings the resolver reads.
// Empty fields fall back to the theme default for that token (Invariant
// V1: a malformed color string still yields a usable snapshot).
type Tokens struct {
	Background string
	Text       string
	Border     string

	PopupBackground string
	PopupText       string

	Muted       string
	Accent      string
	AccentOn    string
	Destructive string
	Success     string
	Warning     string
	Card        string
	CardOn      string

	FontFamily string
	FontSize   float64
}

func defaultDark() Theme {
	return Theme{
		Background:       mustHex("#0a0a0b"),
		Surface:          mustHex("#1a1a1b"),
		SurfaceHover:     Lighten(mustHex("#1a1a1b"), 0.05),
		SurfacePressed:   Darken(mustHex("#1a1a1b"), 0.05),
		SurfaceActive:    mustHex("#2d2d2d"),
		Foreground:       mustHex("#ffffff"),
		ForegroundMuted:  mustHex("#909090"),
		ForegroundSubtle: mustHex("#666666"),
		Accent:           mustHex("#4ade80"),
		Success:          mustHex("#4ade80"),
		Warning:          mustHex("#fbbf24"),
		Destructive:      mustHex("#ef4444"),
		Info:             mustHex("#60a5fa"),
		OnAccent:         mustHex("#0a0a0b"),
		OnSuccess:        mustHex("#0a0a0b"),
		OnWarning:        mustHex("#0a0a0b"),
		OnDestructive:    mustHex("#ffffff"),
		Border:           mustHex("#333333"),
		BorderSubtle:     WithAlpha(mustHex("#333333"), 0.5),
		Shadow:           WithAlpha(mustHex("#000000"), 0.4),
		FontSize:         13,
		FontFamily:       "SF Pro Text",
	}
}

func mustHex(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		panic("theme: invalid built-in hex literal " + s)
	}
	return c
}

// Resolve builds a Theme from raw config tokens, falling back to the dark
// defaults for any token that is empty or fails to parse as hex
// (Invariant V1). The resolver never returns an error; bad input degrades
// to a default color rather than blocking startup.
func Resolve(t Tokens) Theme {
	base := defaultDark()

	pick := func(raw string, fallback Color) Color {
		if raw == "" {
			return fallback
		}
		c, ok := ParseHex(raw)
		if !ok {
			return fallback
		}
		return c
	}

	base.Background = pick(t.Background, base.Background)
	base.Foreground = pick(t.Text, base.Foreground)
	base.Border = pick(t.Border, base.Border)
	base.ForegroundMuted = pick(t.Muted, base.ForegroundMuted)
	base.Accent = pick(t.Accent, base.Accent)
	base.OnAccent = pick(t.AccentOn, base.OnAccent)
	base.Destructive = pick(t.Destructive, base.Destructive)
	base.Success = pick(t.Success, base.Success)
	base.Warning = pick(t.Warning, base.Warning)
	base.Surface = pick(t.Card, base.Surface)
	base.OnSuccess = pick(t.CardOn, base.OnSuccess)

	base.SurfaceHover = Lighten(base.Surface, 0.05)
	base.SurfacePressed = Darken(base.Surface, 0.05)

	if t.FontFamily != "" {
		base.FontFamily = t.FontFamily
	}
	if t.FontSize > 0 {
		base.FontSize = t.FontSize
	}

	return base
}
