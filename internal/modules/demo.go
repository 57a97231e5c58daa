package modules

import (
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Demo is a self-contained module with no external data source, used to
// exercise the popup/panel plumbing end-to-end without wiring a real
// producer (§4.1: `"demo" → toggle_demo_panel`). It never updates and
// its popup content is a fixed showcase of the available element kinds.
type Demo struct {
	Base

	label string
}

// NewDemo creates a Demo module labeled label.
func NewDemo(id, label string) *Demo {
	if label == "" {
		label = "Demo"
	}
	return &Demo{Base: NewBase(id), label: label}
}

func (d *Demo) Render(theme.Theme) uitree.Node {
	return uitree.Text(d.label)
}

func (d *Demo) PopupSpec() (PopupSpec, bool) {
	return PopupSpec{Width: 280, Height: 160, Anchor: "center", PopupType: PopupTypePanel}, true
}

func (d *Demo) RenderPopup(theme.Theme) (uitree.Node, bool) {
	return uitree.Column(8,
		uitree.Text(d.label),
		uitree.Node{Kind: uitree.KindProgressBar, Value: 0.5},
		uitree.Row(4, uitree.Icon("info"), uitree.Text("popup host showcase")),
	), true
}

func (d *Demo) HasPopup() bool { return true }
