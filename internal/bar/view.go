package bar

import (
	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/popup"
	"github.com/barstatus/barstatus/internal/theme"
)

// Layout is the window placement a View was built for (§4.7).
type Layout int

const (
	LayoutFull Layout = iota
	LayoutLeft
	LayoutRight
)

// refreshIntervalMS is the bar's update-tick cadence (§4.7: "A
// GUI-framework timer fires every 500 ms on the view").
const refreshIntervalMS = 500

// ConfigWatcher is the subset of config.Manager the view needs to drive
// its refresh tick.
type ConfigWatcher interface {
	CheckAndReload() bool
	Config() *config.Config
}

// View is one bar window's zone-based module layout (C8). Left/Right
// windows each get one View around the notch; a Full-layout window gets
// a single View spanning the whole screen.
type View struct {
	layout     Layout
	registry   *modules.Registry
	popupMgr   *popup.Manager
	watcher    ConfigWatcher
	th         theme.Theme
	configVer  uint64

	outer []*PositionedModule
	inner []*PositionedModule

	outerBox *gtk.Box
	innerBox *gtk.Box
	root     *gtk.Box

	tickCb  glib.SourceFunc
	stopped bool

	log zerolog.Logger
}

// NewView builds a View for layout, wiring outerBox/innerBox as the two
// zones separated by a flex spacer (§4.7 "Layout").
func NewView(layout Layout, registry *modules.Registry, popupMgr *popup.Manager, watcher ConfigWatcher, log zerolog.Logger) *View {
	v := &View{layout: layout, registry: registry, popupMgr: popupMgr, watcher: watcher, log: log}

	v.root = gtk.NewBox(gtk.OrientationHorizontalValue, 0)
	v.outerBox = gtk.NewBox(gtk.OrientationHorizontalValue, int(ZoneGap))
	v.innerBox = gtk.NewBox(gtk.OrientationHorizontalValue, int(ZoneGap))
	spacer := gtk.NewBox(gtk.OrientationHorizontalValue, 0)
	spacer.SetHexpand(true)

	v.root.Append(&v.outerBox.Widget)
	v.root.Append(&spacer.Widget)
	v.root.Append(&v.innerBox.Widget)

	v.Rebuild(watcher.Config())
	v.startRefreshTimer()
	return v
}

// Widget returns the view's root container for embedding in a window.
func (v *View) Widget() *gtk.Widget { return &v.root.Widget }

// Stop halts the refresh timer and every module's producer thread,
// called when the owning window is torn down at process shutdown.
func (v *View) Stop() {
	v.stopped = true
	for _, pm := range v.outer {
		pm.Module.Stop()
	}
	for _, pm := range v.inner {
		pm.Module.Stop()
	}
}

// zoneConfigs resolves which ModuleConfig lists populate outer/inner
// for this View's layout (§4.7's position table).
func zoneConfigs(layout Layout, cfg *config.Config) (outer, inner []config.ModuleConfig) {
	switch layout {
	case LayoutLeft:
		return cfg.Modules.Left.Outer, cfg.Modules.Left.Inner
	case LayoutRight:
		return cfg.Modules.Right.Outer, cfg.Modules.Right.Inner
	default: // LayoutFull
		outer = append(append([]config.ModuleConfig{}, cfg.Modules.Left.Outer...), cfg.Modules.Left.Inner...)
		inner = append(append([]config.ModuleConfig{}, cfg.Modules.Right.Outer...), cfg.Modules.Right.Inner...)
		return outer, inner
	}
}

// Rebuild drops the view's current module instances (triggering their
// producers' generation-check exit, §4.7 "Config reload") and
// reconstructs outer/inner from cfg, bumping config_version (Invariant
// P5).
func (v *View) Rebuild(cfg *config.Config) {
	for _, pm := range v.outer {
		pm.Module.Stop()
	}
	for _, pm := range v.inner {
		pm.Module.Stop()
	}
	modules.BumpGeneration()
	v.configVer++

	v.th = theme.Resolve(theme.Tokens{
		Background:      cfg.Background,
		Text:            cfg.Text,
		Border:          cfg.Border,
		PopupBackground: cfg.PopupBackground,
		PopupText:       cfg.PopupText,
		Muted:           cfg.Muted,
		Accent:          cfg.Accent,
		AccentOn:        cfg.AccentOn,
		Destructive:     cfg.Destructive,
		Success:         cfg.Success,
		Warning:         cfg.Warning,
		Card:            cfg.Card,
		CardOn:          cfg.CardOn,
		FontFamily:      cfg.FontFamily,
		FontSize:        cfg.FontSize,
	})

	outerCfgs, innerCfgs := zoneConfigs(v.layout, cfg)
	v.outer = v.buildZone(outerCfgs)
	v.inner = v.buildZone(innerCfgs)

	clearChildren(v.outerBox)
	clearChildren(v.innerBox)
	for _, pm := range v.outer {
		v.attach(v.outerBox, pm)
	}
	for _, pm := range v.inner {
		v.attach(v.innerBox, pm)
	}
}

func (v *View) buildZone(cfgs []config.ModuleConfig) []*PositionedModule {
	out := make([]*PositionedModule, 0, len(cfgs))
	for _, cfg := range cfgs {
		mod, err := modules.New(cfg)
		if err != nil {
			v.log.Warn().Err(err).Str("type", string(cfg.Type)).Msg("bar: skipping module")
			continue
		}
		pm := &PositionedModule{Module: mod, Cfg: cfg, Style: styleFromConfig(cfg), Toggled: false}
		if _, ok := mod.(modules.PopupCapable); ok || cfg.Type == config.ModuleExternal {
			v.registry.Register(mod)
		}
		out = append(out, pm)
	}
	return out
}

func styleFromConfig(cfg config.ModuleConfig) Style {
	return Style{
		TextColor:        cfg.Color,
		Background:       cfg.Background,
		BorderColor:      cfg.BorderColor,
		BorderWidth:      cfg.BorderWidth,
		CornerRadius:     cfg.CornerRadius,
		Padding:          cfg.Padding,
		CriticalColor:    cfg.CriticalColor,
		WarningColor:     cfg.WarningColor,
		ActiveTextColor:  cfg.ActiveTextColor,
		ActiveBackground: cfg.ActiveBackground,
	}
}

// attach renders pm and attaches its click handlers (§4.7 steps 1-5).
func (v *View) attach(zone *gtk.Box, pm *PositionedModule) {
	content := pm.Module.Render(v.th)
	wrapped := Wrap(*pm, v.th, content)
	widget := Materialize(wrapped)
	if widget == nil {
		return
	}

	popupKnown := false
	switch pm.Cfg.Popup {
	case config.PopupCalendar, config.PopupDemo, config.PopupInfo, config.PopupScript, config.PopupPanel, config.PopupNews:
		popupKnown = true
	}
	if popupKnown {
		id := pm.Module.ID()
		click := gtk.NewGestureClick()
		click.SetButton(1)
		cb := func(gtk.GestureClick, int, float64, float64) {
			v.popupMgr.Toggle(id)
		}
		click.ConnectPressed(&cb)
		widget.AddController(&click.EventController)
	} else if pm.Cfg.ClickCommand != "" {
		command := pm.Cfg.ClickCommand
		click := gtk.NewGestureClick()
		click.SetButton(1)
		cb := func(gtk.GestureClick, int, float64, float64) {
			modules.SpawnDetachedShell(command)
		}
		click.ConnectPressed(&cb)
		widget.AddController(&click.EventController)
	}

	if pm.Cfg.RightClickCommand != "" {
		command := pm.Cfg.RightClickCommand
		rightClick := gtk.NewGestureClick()
		rightClick.SetButton(3)
		cb := func(gtk.GestureClick, int, float64, float64) {
			modules.SpawnDetachedShell(command)
		}
		rightClick.ConnectPressed(&cb)
		widget.AddController(&rightClick.EventController)
	}

	zone.Append(widget)
}

func clearChildren(box *gtk.Box) {
	for child := box.GetFirstChild(); child != nil; {
		next := child.GetNextSibling()
		box.Remove(child)
		child = next
	}
}

// startRefreshTimer installs the 500ms update/redraw tick (§4.7
// "Refresh model"), grounded on the teacher's glib.TimeoutAdd idiom
// (internal/ui/component/toaster.go). The callback is retained on the
// View so it stays reachable by the Go GC for the view's lifetime.
func (v *View) startRefreshTimer() {
	v.tickCb = glib.SourceFunc(func(uintptr) bool {
		if v.stopped {
			return false
		}
		v.onTick()
		return true // repeat (gtk.SourceContinue)
	})
	glib.TimeoutAdd(refreshIntervalMS, &v.tickCb, 0)
}

func (v *View) onTick() {
	if v.watcher.CheckAndReload() {
		v.Rebuild(v.watcher.Config())
		return
	}

	dirty := false
	for _, pm := range v.outer {
		if pm.Module.Update() {
			dirty = true
		}
	}
	for _, pm := range v.inner {
		if pm.Module.Update() {
			dirty = true
		}
	}
	if dirty {
		v.redrawZone(v.outerBox, v.outer)
		v.redrawZone(v.innerBox, v.inner)
	}
}

// Redraw forces an immediate re-render of both zones regardless of
// dirty state, used by the IPC `redraw` command (§4.5) instead of
// waiting for the next 500ms tick.
func (v *View) Redraw() {
	v.redrawZone(v.outerBox, v.outer)
	v.redrawZone(v.innerBox, v.inner)
}

func (v *View) redrawZone(box *gtk.Box, pms []*PositionedModule) {
	clearChildren(box)
	for _, pm := range pms {
		v.attach(box, pm)
	}
}
