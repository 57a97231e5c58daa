package modules

import (
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Static renders a fixed text/icon pair and never updates after
// construction (§4.4: "Never updates; fixed text/icon").
type Static struct {
	Base

	text string
	icon string
}

// NewStatic creates a Static module with the given fixed text and icon.
func NewStatic(id, text, icon string) *Static {
	return &Static{Base: NewBase(id), text: text, icon: icon}
}

func (s *Static) Render(theme.Theme) uitree.Node {
	switch {
	case s.icon != "" && s.text != "":
		return uitree.Row(4, uitree.Icon(s.icon), uitree.Text(s.text))
	case s.icon != "":
		return uitree.Icon(s.icon)
	default:
		return uitree.Text(s.text)
	}
}
