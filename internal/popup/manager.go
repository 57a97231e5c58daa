// Package popup implements the popup/panel visibility state machine
// (C7, §4.6): mutual exclusion between at most one popup and one panel
// window, click-outside dismissal, cursor tracking, and reactive content
// switching via a module-id broadcast channel that the popup host (C9)
// consumes.
package popup

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/barstatus/barstatus/internal/modules"
)

// Role distinguishes a window's purpose. The source classifies windows
// by frame geometry (width thresholds of 500/200px); per the spec's own
// flagged fix (REDESIGN FLAGS, Open Question 1) this implementation
// tags every window with its role and owning module id instead, so two
// popups of similar width are never confused.
type Role int

const (
	RoleBar Role = iota
	RolePopup
	RolePanel
)

// WindowTag identifies one window by role and, for popup/panel windows,
// the module that owns its content.
type WindowTag struct {
	Role     Role
	ModuleID string
}

// Frame is a window's on-screen rectangle, used only for click-outside
// hit-testing — geometry still matters for that check, but never for
// deciding *which* window something is (Role/ModuleID settle that).
type Frame struct {
	Tag        WindowTag
	X, Y, W, H float64
}

func (f Frame) contains(x, y float64) bool {
	return x >= f.X && x <= f.X+f.W && y >= f.Y && y <= f.Y+f.H
}

// Controller abstracts the windowing system so the manager's state
// machine is unit-testable without a real GTK event loop. The App shell
// wires a GTK-backed implementation at startup.
type Controller interface {
	ShowPopup(tag WindowTag, spec modules.PopupSpec, mouseX, screenWidth, barY float64)
	ShowPanel(tag WindowTag, spec modules.PopupSpec)
	HideAll()
	VisibleFrames() []Frame
	InstallClickOutsideMonitor(onClick func(x, y float64))
	RemoveClickOutsideMonitor()
	InstallCursorMonitor()
	RemoveCursorMonitor()
	MouseX() float64
	ScreenWidth() float64
	BarY() float64
}

// Registry is the subset of modules.Registry the manager needs.
type Registry interface {
	Lookup(id string) (modules.Module, bool)
}

// Manager owns the three globals described in §4.6: current_module_id,
// popup_visible, and a broadcast channel of module-id changes.
type Manager struct {
	registry   Registry
	controller Controller

	mu               sync.Mutex
	currentModuleID  string
	popupVisible     bool

	subMu sync.Mutex
	subs  []chan string
}

// NewManager creates a Manager bound to registry and controller.
func NewManager(registry Registry, controller Controller) *Manager {
	return &Manager{registry: registry, controller: controller}
}

// Subscribe returns a channel that receives the current module id every
// time it changes (including the empty string on hide). The channel is
// buffered to 1 and overwritten rather than blocked on, so a slow
// consumer coalesces backlog by always seeing the latest value (§4.6
// "Reactive content").
func (m *Manager) Subscribe() <-chan string {
	ch := make(chan string, 1)
	m.subMu.Lock()
	m.subs = append(m.subs, ch)
	m.subMu.Unlock()
	return ch
}

func (m *Manager) broadcast(moduleID string) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- moduleID:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- moduleID
		}
	}
}

// CurrentModuleID returns the module id currently shown, or "" if none.
func (m *Manager) CurrentModuleID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentModuleID
}

// PopupVisible reports whether any popup/panel window is visible.
func (m *Manager) PopupVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.popupVisible
}

// Toggle implements §4.6's toggle(module_id) operation. It returns
// whether a popup/panel is now visible for moduleID.
func (m *Manager) Toggle(moduleID string) bool {
	m.mu.Lock()

	if m.popupVisible && m.currentModuleID == moduleID {
		m.mu.Unlock()
		m.Hide()
		return false
	}

	mod, ok := m.registry.Lookup(moduleID)
	if !ok {
		m.mu.Unlock()
		log.Warn().Str("module_id", moduleID).Msg("popup: toggle on unregistered module")
		return false
	}
	spec, ok := mod.PopupSpec()
	if !ok {
		m.mu.Unlock()
		log.Warn().Str("module_id", moduleID).Msg("popup: toggle on module without popup_spec")
		return false
	}

	previous := m.currentModuleID
	m.currentModuleID = moduleID
	m.popupVisible = true
	m.mu.Unlock()

	if previous != "" && previous != moduleID {
		if prevMod, ok := m.registry.Lookup(previous); ok {
			prevMod.OnPopupEvent(modules.PopupEvent{Kind: modules.PopupEventClosed})
		}
	}

	m.controller.HideAll()
	tag := WindowTag{ModuleID: moduleID}
	if spec.PopupType == modules.PopupTypePanel {
		tag.Role = RolePanel
		m.controller.ShowPanel(tag, spec)
	} else {
		tag.Role = RolePopup
		m.controller.ShowPopup(tag, spec, m.controller.MouseX(), m.controller.ScreenWidth(), m.controller.BarY())
	}
	m.controller.InstallClickOutsideMonitor(m.handleGlobalClick)
	m.controller.InstallCursorMonitor()

	mod.OnPopupEvent(modules.PopupEvent{Kind: modules.PopupEventOpened})
	m.broadcast(moduleID)
	return true
}

// Hide implements §4.6's hide() operation.
func (m *Manager) Hide() {
	m.mu.Lock()
	moduleID := m.currentModuleID
	wasVisible := m.popupVisible
	m.popupVisible = false
	m.currentModuleID = ""
	m.mu.Unlock()

	if !wasVisible {
		return
	}

	if mod, ok := m.registry.Lookup(moduleID); ok {
		mod.OnPopupEvent(modules.PopupEvent{Kind: modules.PopupEventClosed})
	}
	m.controller.HideAll()
	m.controller.RemoveClickOutsideMonitor()
	m.controller.RemoveCursorMonitor()
	m.broadcast("")
}

// handleGlobalClick implements §4.6's click-outside dismissal: a click
// inside any currently visible popup/panel frame is ignored, a click
// inside the bar is ignored (Boundary B1), anything else hides.
func (m *Manager) handleGlobalClick(x, y float64) {
	for _, f := range m.controller.VisibleFrames() {
		if f.contains(x, y) {
			return
		}
	}
	m.Hide()
}
