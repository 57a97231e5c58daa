package modules

import (
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// External is a module with no producer of its own: every field of its
// rendered state is mutated only by IPC `set` commands against the
// shared ExternalState record (§3, §4.4: "IPC-mutated only; no producer
// thread").
type External struct {
	Base

	state *ExternalState
}

// NewExternal creates an External module and registers its shared state.
func NewExternal(id string) *External {
	return &External{Base: NewBase(id), state: RegisterExternal(id)}
}

func (e *External) Render(theme.Theme) uitree.Node {
	snap := e.state.snapshot()
	if !snap.Drawing {
		return uitree.Node{}
	}
	n := uitree.Text(snap.Label)
	if snap.Icon != "" {
		n = uitree.Row(4, uitree.Icon(snap.Icon), n)
	}
	n.Color = snap.Foreground
	n.Background = snap.Background
	return n
}

// SetProperty applies an IPC-driven field mutation (§4.5: IPC `set`
// command). Recognized keys: label, icon, color, background, drawing.
// An invalid hex value for color/background clears that field instead
// of storing garbage (§4.5: "invalid hex clears the color field").
func (e *External) SetProperty(key, value string) bool {
	e.state.mu.Lock()
	switch key {
	case "label":
		e.state.Label = value
	case "icon":
		e.state.Icon = value
	case "color":
		e.state.Foreground = validHexOrEmpty(value)
	case "background":
		e.state.Background = validHexOrEmpty(value)
	case "drawing":
		e.state.Drawing = value == "true" || value == "1"
	default:
		e.state.mu.Unlock()
		return false
	}
	e.state.mu.Unlock()
	e.MarkDirty()
	return true
}

func validHexOrEmpty(value string) string {
	if value == "" {
		return ""
	}
	if _, ok := theme.ParseHex(value); !ok {
		return ""
	}
	return value
}

func (e *External) Stop() {
	e.Base.Stop()
	UnregisterExternal(e.ID())
}
