package modules

import (
	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Separator renders one of the four closed-vocabulary separator shapes
// and never updates (§4.4, §6: `separator_type`).
type Separator struct {
	Base

	kind  config.SeparatorType
	width float64
	color string
}

// NewSeparator creates a Separator module of the given kind.
func NewSeparator(id string, kind config.SeparatorType, width float64, color string) *Separator {
	if width <= 0 {
		width = 1
	}
	return &Separator{Base: NewBase(id), kind: kind, width: width, color: color}
}

func (s *Separator) Render(theme.Theme) uitree.Node {
	switch s.kind {
	case config.SeparatorLine:
		n := uitree.Node{Kind: uitree.KindSeparatorLine, Value: s.width, Color: s.color}
		return n
	case config.SeparatorDot:
		n := uitree.Text("•")
		n.Color = s.color
		return n
	case config.SeparatorIcon:
		n := uitree.Icon("separator")
		n.Color = s.color
		return n
	default: // config.SeparatorSpace
		return uitree.Node{Kind: uitree.KindSpacer, Gap: s.width}
	}
}
