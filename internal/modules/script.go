package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Script runs a user-configured shell command on a user-configured
// cadence and renders its stdout verbatim (§4.4, §6: `command`,
// `update_interval`). An optional popup runs a second command
// (`popup_command`) on demand when the popup opens.
type Script struct {
	Base

	command      string
	icon         string
	popupCommand string
	popupSpec    PopupSpec
	hasPopup     bool

	mu      sync.RWMutex
	output  string
	haveVal bool

	popupMu     sync.RWMutex
	popupOutput string
}

// NewScript creates a Script module and starts its producer at interval.
func NewScript(id, command, icon string, interval time.Duration, popupCommand string, spec PopupSpec) *Script {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	s := &Script{
		command:      command,
		icon:         icon,
		popupCommand: popupCommand,
		popupSpec:    spec,
		hasPopup:     popupCommand != "",
		Base:         NewBase(id),
	}
	if command != "" {
		s.RunProducer(interval, s.fetch)
	}
	return s
}

func (s *Script) fetch() {
	if s.command == "" {
		return
	}
	out, err := runShell(s.command)
	if err != nil {
		return
	}
	s.mu.Lock()
	changed := !s.haveVal || out != s.output
	s.output = out
	s.haveVal = true
	s.mu.Unlock()
	if changed {
		s.MarkDirty()
	}
}

func (s *Script) Render(theme.Theme) uitree.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.haveVal {
		return ErrorPlaceholder()
	}
	if s.icon != "" {
		return uitree.Row(4, uitree.Icon(s.icon), uitree.Text(s.output))
	}
	return uitree.Text(s.output)
}

func (s *Script) PopupSpec() (PopupSpec, bool) {
	if !s.hasPopup {
		return PopupSpec{}, false
	}
	return s.popupSpec, true
}

func (s *Script) RenderPopup(theme.Theme) (uitree.Node, bool) {
	if !s.hasPopup {
		return uitree.Node{}, false
	}
	out, err := runShell(s.popupCommand)
	if err != nil {
		out = ""
	}
	s.popupMu.Lock()
	s.popupOutput = out
	s.popupMu.Unlock()
	if out == "" {
		return ErrorPlaceholder(), true
	}
	return uitree.Text(out), true
}

func (s *Script) OnPopupAction(action PopupAction) {
	// A script popup has no built-in interactive actions; clicks inside
	// its content are opaque to the module (§6: popup_command controls
	// content, not behavior).
}

func (s *Script) HasPopup() bool { return s.hasPopup }
