package app

import (
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/popup"
	"github.com/barstatus/barstatus/internal/popuphost"
)

// hostWindow is a full-width-or-narrower window hidden (alpha 0, mouse
// ignored) until the popup manager shows it (§4.9 step 4).
type hostWindow struct {
	window  *gtk.ApplicationWindow
	host    *popuphost.Host
	changes chan string
}

// controller implements popup.Controller against real GTK windows: one
// bar window per screen half (or one Full window), a popup host window
// and a panel host window. Click-outside / cursor tracking are modeled
// as GestureClick / EventControllerMotion controllers attached to the
// windows this process owns, rather than a true OS-wide input monitor —
// that monitor is itself a platform concern the Controller interface
// exists to keep out of the popup state machine (§4.9 step 2 note).
// barWindowBinding retains one bar window's click/motion callbacks at a
// stable address — each binding is heap-allocated individually so a
// later append to controller.barWindows can never invalidate a pointer
// already handed to GTK's ConnectPressed/ConnectMotion.
type barWindowBinding struct {
	window   *gtk.ApplicationWindow
	frame    popup.Frame
	clickCb  func(gtk.GestureClick, int, float64, float64)
	motionCb func(gtk.EventControllerMotion, float64, float64)
}

type controller struct {
	screen     Screen
	barY       float64
	barWindows []*barWindowBinding

	popupWin *hostWindow
	panelWin *hostWindow

	currentFrames []popup.Frame

	mouseX float64

	onClickOutside func(x, y float64)
	cursorTracking bool
}

// newController builds the controller's host windows, each with its own
// feeder channel (fed from popup.Manager.Subscribe() by wireBroadcast
// once the manager exists — see shell.go). Bar windows are registered
// separately via registerBarWindow once built by the shell.
func newController(app *gtk.Application, screen Screen, barY float64, registry popuphost.Registry) *controller {
	c := &controller{screen: screen, barY: barY}
	c.popupWin = c.buildHostWindow(app, modules.PopupTypePopup, registry, screen, barY)
	c.panelWin = c.buildHostWindow(app, modules.PopupTypePanel, registry, screen, barY)
	return c
}

func (c *controller) buildHostWindow(app *gtk.Application, pt modules.PopupType, registry popuphost.Registry, screen Screen, barY float64) *hostWindow {
	win := gtk.NewApplicationWindow(app)
	win.SetDecorated(false)
	win.SetResizable(false)
	win.SetVisible(false)

	changes := make(chan string, 1)
	host := popuphost.NewHost(pt, registry, changes, screen.Height, barY)
	win.SetChild(host.Widget())

	return &hostWindow{window: win, host: host, changes: changes}
}

// wireBroadcast fans popup.Manager.Subscribe()'s single coalescing
// channel out to both host windows' own feeder channels, preserving the
// manager's non-blocking overwrite semantics on each leg.
func (c *controller) wireBroadcast(changes <-chan string) {
	go func() {
		for id := range changes {
			feed(c.popupWin.changes, id)
			feed(c.panelWin.changes, id)
		}
	}()
}

func feed(ch chan string, id string) {
	select {
	case ch <- id:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- id:
		default:
		}
	}
}

// registerBarWindow records a bar window's frame for click-outside
// hit-testing and MouseX()/ScreenWidth() queries, and attaches the
// (always-present, callback-gated) click and motion controllers.
func (c *controller) registerBarWindow(win *gtk.ApplicationWindow, frame popup.Frame) {
	b := &barWindowBinding{window: win, frame: frame}
	b.motionCb = func(_ gtk.EventControllerMotion, x, _ float64) {
		if c.cursorTracking {
			c.mouseX = frame.X + x
		}
	}
	b.clickCb = func(_ gtk.GestureClick, _ int, x, y float64) {
		if c.onClickOutside != nil {
			c.onClickOutside(x, y)
		}
	}
	c.barWindows = append(c.barWindows, b)
	c.currentFrames = append(c.currentFrames, frame)

	motion := gtk.NewEventControllerMotion()
	motion.ConnectMotion(&b.motionCb)
	win.AddController(&motion.EventController)

	click := gtk.NewGestureClick()
	click.SetButton(0)
	click.ConnectPressed(&b.clickCb)
	win.AddController(&click.EventController)
}

// ShowPopup positions and reveals the popup host window (§4.8); its x
// position comes from anchorX, centered on the mouse x.
func (c *controller) ShowPopup(tag popup.WindowTag, spec modules.PopupSpec, mouseX, screenWidth, barY float64) {
	c.show(c.popupWin, tag, spec, mouseX, screenWidth, barY)
}

// ShowPanel positions and reveals the full-width panel host window.
func (c *controller) ShowPanel(tag popup.WindowTag, spec modules.PopupSpec) {
	c.show(c.panelWin, tag, spec, 0, c.screen.Width, c.barY)
}

func (c *controller) show(hw *hostWindow, tag popup.WindowTag, spec modules.PopupSpec, mouseX, screenWidth, barY float64) {
	x := anchorX(spec, mouseX, screenWidth)
	hw.window.SetDefaultSize(int(spec.Width), int(spec.Height))
	hw.window.SetVisible(true)
	hw.window.Present()

	c.currentFrames = append(c.barFramesSnapshot(), popup.Frame{
		Tag: tag, X: x, Y: barY, W: spec.Width, H: spec.Height,
	})
}

func (c *controller) barFramesSnapshot() []popup.Frame {
	out := make([]popup.Frame, len(c.barWindows))
	for i, b := range c.barWindows {
		out[i] = b.frame
	}
	return out
}

// anchorX resolves a popup's x-position by centering it on the live
// mouse-x position and clamping to the screen, per §4.6's positioning
// rule ("center horizontally on the current mouse x ... clamped to
// [0, screen_width - popup_width]"), not the module's anchor keyword —
// the anchor field has no bearing on Popup-type placement in the
// source (original_source/src/gpui_app/popup_manager.rs:188-201).
func anchorX(spec modules.PopupSpec, mouseX, screenWidth float64) float64 {
	x := mouseX - spec.Width/2
	if x < 0 {
		return 0
	}
	if max := screenWidth - spec.Width; x > max {
		return max
	}
	return x
}

// HideAll hides both host windows and drops the cached popup/panel
// frame, leaving the permanent bar frames in place.
func (c *controller) HideAll() {
	c.popupWin.window.SetVisible(false)
	c.panelWin.window.SetVisible(false)
	c.currentFrames = c.barFramesSnapshot()
}

// VisibleFrames returns every currently on-screen frame (bar windows
// plus whichever popup/panel is open) for click-outside hit-testing.
func (c *controller) VisibleFrames() []popup.Frame {
	return c.currentFrames
}

func (c *controller) InstallClickOutsideMonitor(onClick func(x, y float64)) {
	c.onClickOutside = onClick
}

func (c *controller) RemoveClickOutsideMonitor() {
	c.onClickOutside = nil
}

func (c *controller) InstallCursorMonitor() { c.cursorTracking = true }
func (c *controller) RemoveCursorMonitor()  { c.cursorTracking = false }

func (c *controller) MouseX() float64      { return c.mouseX }
func (c *controller) ScreenWidth() float64 { return c.screen.Width }
func (c *controller) BarY() float64        { return c.barY }

var _ popup.Controller = (*controller)(nil)
