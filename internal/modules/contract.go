// Package modules implements the polymorphic module contract (C4) and the
// ~20 concrete producer kinds (C5) described in §4.3/§4.4 of the spec.
package modules

import (
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// PopupType distinguishes the two window shapes a module's popup content
// can be hosted in (§3: "Popup/Panel Visibility").
type PopupType int

const (
	PopupTypePopup PopupType = iota
	PopupTypePanel
)

// PopupSpec describes how a module's popup content should be hosted.
type PopupSpec struct {
	Width     float64
	Height    float64
	Anchor    string // left|center|right
	PopupType PopupType
}

// PopupEventKind enumerates the events the popup/panel manager delivers
// to a module's on_popup_event.
type PopupEventKind int

const (
	PopupEventOpened PopupEventKind = iota
	PopupEventClosed
	PopupEventMouseEntered
	PopupEventMouseLeft
	PopupEventScroll
)

// PopupEvent is delivered by the popup manager on visibility/interaction
// transitions.
type PopupEvent struct {
	Kind   PopupEventKind
	DeltaX float64
	DeltaY float64
}

// PopupActionKind enumerates the interactive actions a module's popup
// content can dispatch back to its owning module.
type PopupActionKind int

const (
	ActionPrev PopupActionKind = iota
	ActionNext
	ActionToday
	ActionReset
	ActionDragStart
	ActionDragEnd
	ActionSliderSet
)

// PopupAction is dispatched from rendered popup content back to the
// module that produced it.
type PopupAction struct {
	Kind  PopupActionKind
	Value float64 // meaningful only for ActionSliderSet, in [0,1]
}

// Module is the capability set every producer implements (§4.3). Not
// every module implements every optional capability meaningfully;
// modules with no popup return false/zero from the popup-related calls.
type Module interface {
	ID() string

	// Render returns the bar-item subtree for the current cached state.
	Render(th theme.Theme) uitree.Node

	// Update swap-clears the producer's dirty flag and reports whether
	// visible state changed since the previous call (§4.3, §8 P4).
	Update() bool

	// Value returns a 0..100 reading for threshold coloring, or
	// (0, false) when thresholds don't apply to this module.
	Value() (float64, bool)

	IsLoading() bool

	// PopupSpec returns this module's popup hosting parameters, or
	// (zero, false) when the module has no popup.
	PopupSpec() (PopupSpec, bool)

	// RenderPopup returns the module's expanded popup content, or
	// (zero, false) when the module has no popup.
	RenderPopup(th theme.Theme) (uitree.Node, bool)

	OnPopupEvent(ev PopupEvent)
	OnPopupAction(action PopupAction)

	// SetProperty applies an IPC-driven mutation; returns true iff key
	// was recognized.
	SetProperty(key, value string) bool

	// Stop releases the module's resources (stops its producer thread,
	// deregisters external state); called before the module instance is
	// dropped.
	Stop()
}

// PopupCapable is implemented by modules whose popup is hosted by the
// shared popup host (C9) and which must therefore be reachable by id
// through the global Registry.
type PopupCapable interface {
	Module
	HasPopup() bool
}
