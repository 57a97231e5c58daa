// Package popuphost implements the generic popup/panel host view (C9,
// §4.8): one instance per window type (Popup, Panel), reflecting
// whichever module the popup manager currently has active.
package popuphost

import (
	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/barstatus/barstatus/internal/bar"
	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/theme"
)

// Registry is the subset of modules.Registry the host needs.
type Registry interface {
	Lookup(id string) (modules.Module, bool)
}

// defaultMaxHeightFraction is the runtime ceiling applied to a popup's
// rendered content when no narrower per-popup override is configured
// (§4.8 step 3: "50% of screen_height - bar_height by default").
const defaultMaxHeightFraction = 0.5

// Host renders whichever module is currently active for its PopupType
// (§4.8). It subscribes once to the popup manager's module-id broadcast
// channel and re-renders on every emission.
type Host struct {
	popupType modules.PopupType
	registry  Registry
	screenH   float64
	barH      float64

	currentModuleID string

	root *gtk.Box

	idleCb   glib.SourceFunc
	scrollCb func(gtk.EventControllerScroll, float64, float64) bool
}

// NewHost creates a Host for popupType, wired to registry, and begins
// consuming changes channel (§4.8 step 1: "subscribes once at
// construction").
func NewHost(popupType modules.PopupType, registry Registry, changes <-chan string, screenHeight, barHeight float64) *Host {
	h := &Host{popupType: popupType, registry: registry, screenH: screenHeight, barH: barHeight}
	h.root = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	go h.consume(changes)
	return h
}

// Widget returns the host's root container for embedding in its window.
func (h *Host) Widget() *gtk.Widget { return &h.root.Widget }

// consume receives module ids from the broadcast channel. Per §4.8's note
// that a slow subscriber must not render intermediate ids, the coalescing
// happens on the sending side: the channel has one buffered slot that the
// sender overwrites, so each receive yields the most recent id.
func (h *Host) consume(changes <-chan string) {
	for moduleID := range changes {
		h.setCurrentModuleID(moduleID)
	}
}

func (h *Host) setCurrentModuleID(moduleID string) {
	h.currentModuleID = moduleID
	h.scheduleRender()
}

// scheduleRender marshals the render back onto the GTK main thread via
// glib.IdleAdd, the pattern the teacher uses for any GTK mutation
// triggered from a background goroutine (internal/ui/app.go).
func (h *Host) scheduleRender() {
	h.idleCb = glib.SourceFunc(func(uintptr) bool {
		h.render()
		return false // one-shot
	})
	glib.IdleAdd(&h.idleCb, 0)
}

// render implements §4.8 steps 2-4.
func (h *Host) render() {
	clearChildren(h.root)

	if h.currentModuleID == "" {
		return
	}
	mod, ok := h.registry.Lookup(h.currentModuleID)
	if !ok {
		return
	}
	spec, ok := mod.PopupSpec()
	if !ok || spec.PopupType != h.popupType {
		return // wrong host type for this module; render empty (§4.8 step 2)
	}

	content, ok := mod.RenderPopup(theme.Theme{})
	if !ok {
		return
	}
	widget := bar.Materialize(content)
	if widget == nil {
		return
	}

	maxHeight := (h.screenH - h.barH) * defaultMaxHeightFraction
	height := spec.Height
	if height > maxHeight {
		height = maxHeight
	}
	h.root.SetSizeRequest(int(spec.Width), int(height))

	h.attachScroll(mod)
	h.root.Append(widget)
}

// attachScroll installs the scroll-wheel handler (§4.8 step 4) that
// dispatches PopupEvent::Scroll to the owning module.
func (h *Host) attachScroll(mod modules.Module) {
	scroll := gtk.NewEventControllerScroll(gtk.EventControllerScrollBothAxesValue)
	h.scrollCb = func(_ gtk.EventControllerScroll, dx, dy float64) bool {
		mod.OnPopupEvent(modules.PopupEvent{Kind: modules.PopupEventScroll, DeltaX: dx, DeltaY: dy})
		return true
	}
	scroll.ConnectScroll(&h.scrollCb)
	h.root.AddController(&scroll.EventController)
}

func clearChildren(box *gtk.Box) {
	for child := box.GetFirstChild(); child != nil; {
		next := child.GetNextSibling()
		box.Remove(child)
		child = next
	}
}
