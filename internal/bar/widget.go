package bar

import (
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/barstatus/barstatus/internal/uitree"
)

// Materialize walks a rendered uitree.Node and builds the equivalent
// GTK widget tree, grounded on the teacher's component construction
// idiom (internal/ui/component/*.go): always check constructor results,
// prefer css classes over inline styling, retain strings passed by
// pointer to puregotk setters.
func Materialize(n uitree.Node) *gtk.Widget {
	switch n.Kind {
	case uitree.KindText:
		return materializeLabel(n)
	case uitree.KindIcon:
		return materializeIcon(n)
	case uitree.KindRow:
		return materializeBox(n, gtk.OrientationHorizontalValue)
	case uitree.KindColumn:
		return materializeBox(n, gtk.OrientationVerticalValue)
	case uitree.KindSpacer:
		box := gtk.NewBox(gtk.OrientationHorizontalValue, 0)
		box.SetHexpand(true)
		return &box.Widget
	case uitree.KindSeparatorLine:
		sep := gtk.NewSeparator(gtk.OrientationVerticalValue)
		return &sep.Widget
	case uitree.KindProgressBar:
		bar := gtk.NewProgressBar()
		bar.SetFraction(n.Value)
		return &bar.Widget
	case uitree.KindSlider:
		scale := gtk.NewScaleWithRange(gtk.OrientationHorizontalValue, 0, 1, 0.01)
		scale.SetValue(n.Value)
		return &scale.Widget
	case uitree.KindSkeleton:
		box := gtk.NewBox(gtk.OrientationHorizontalValue, 0)
		box.AddCssClass("module-skeleton")
		box.SetSizeRequest(int(n.Value), int(n.Gap))
		return &box.Widget
	case uitree.KindGrid:
		grid := gtk.NewGrid()
		cols := n.Columns
		if cols <= 0 {
			cols = 1
		}
		for i, child := range n.Children {
			w := Materialize(child)
			if w == nil {
				continue
			}
			grid.Attach(w, i%cols, i/cols, 1, 1)
		}
		return &grid.Widget
	case uitree.KindButton:
		btn := gtk.NewButtonWithLabel(n.Text)
		if n.OnClick != nil {
			cb := func(gtk.Button) { n.OnClick() }
			btn.ConnectClicked(&cb)
		}
		return &btn.Widget
	default:
		return nil
	}
}

func materializeLabel(n uitree.Node) *gtk.Widget {
	text := n.Text
	label := gtk.NewLabel(&text)
	if label == nil {
		return nil
	}
	if n.Muted {
		label.AddCssClass("module-muted")
	}
	if n.Bold {
		label.AddCssClass("module-bold")
	}
	applyColor(&label.Widget, n.Color, n.Background)
	return &label.Widget
}

func materializeIcon(n uitree.Node) *gtk.Widget {
	img := gtk.NewImage()
	if img == nil {
		return nil
	}
	name := n.IconName + "-symbolic"
	img.SetFromIconName(&name)
	applyColor(&img.Widget, n.Color, n.Background)
	return &img.Widget
}

func materializeBox(n uitree.Node, orientation gtk.Orientation) *gtk.Widget {
	box := gtk.NewBox(orientation, int(n.Gap))
	if box == nil {
		return nil
	}
	for _, child := range n.Children {
		w := Materialize(child)
		if w == nil {
			continue
		}
		box.Append(w)
	}
	applyColor(&box.Widget, n.Color, n.Background)
	return &box.Widget
}

// applyColor assigns a per-node color override as a named CSS class,
// registered once in the shared display-wide provider (styles.go) —
// GTK4 has no per-widget inline style context, so ad hoc colors go
// through AddCssClass the way the teacher's theme manager applies
// palette CSS (internal/ui/theme/manager.go: ApplyToDisplay).
func applyColor(w *gtk.Widget, color, background string) {
	if color == "" && background == "" {
		return
	}
	w.AddCssClass(styleClassFor(color, background))
}
