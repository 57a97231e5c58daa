package app

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/barstatus/barstatus/internal/modules"
)

// ipcHandler implements ipc.Handler against a running App (§4.5's command
// table). It never touches GTK objects directly from the accept-loop
// goroutine: window-affecting commands marshal onto the main thread the
// same way popuphost.Host does for its renders.
type ipcHandler struct {
	app *App
}

func newIPCHandler(a *App) *ipcHandler { return &ipcHandler{app: a} }

// Redraw forces every bar view to drop its cached widgets and re-render
// on the next idle tick, without waiting for the 500ms timer.
func (h *ipcHandler) Redraw() string {
	h.app.onMainThread(func() {
		for _, v := range h.app.views {
			v.Redraw()
		}
	})
	return "ok"
}

// Reload re-reads config.toml immediately instead of waiting for the
// file watcher's debounce window.
func (h *ipcHandler) Reload() string {
	if _, err := h.app.cfgMgr.Load(); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	h.app.onMainThread(func() {
		h.app.rebuildViews()
	})
	return "ok"
}

type statusReply struct {
	PopupVisible    bool   `json:"popup_visible"`
	CurrentModuleID string `json:"current_module_id"`
	BarVisible      bool   `json:"bar_visible"`
	ConfigVersion   uint64 `json:"config_version"`
}

// Status emits a one-line JSON summary of visible state (§4.5).
func (h *ipcHandler) Status() string {
	reply := statusReply{
		PopupVisible:    h.app.popupMgr.PopupVisible(),
		CurrentModuleID: h.app.popupMgr.CurrentModuleID(),
		BarVisible:      h.app.barVisible,
		ConfigVersion:   h.app.cfgMgr.Version(),
	}
	out, err := json.Marshal(reply)
	if err != nil {
		return "error: " + err.Error()
	}
	return string(out)
}

// ToggleBar toggles the whole bar's window visibility (distinct from the
// popup manager's per-module toggle).
func (h *ipcHandler) ToggleBar() string {
	h.app.onMainThread(func() {
		h.app.toggleBarVisibility()
	})
	return "ok"
}

// Set mutates an externally-controlled module's property (§4.5: `set <id>
// <key>=<value>`). Unknown id replies an error line; unknown key replies
// an error line too since SetProperty reports it was not recognized.
func (h *ipcHandler) Set(id, key, value string) string {
	mod, ok := h.app.registry.Lookup(id)
	if !ok {
		return "error: unknown id " + id
	}
	if !mod.SetProperty(key, value) {
		return "error: unknown key " + key
	}
	return "ok"
}

// Get reads an external module's property, or all of them as JSON when
// property is empty (§4.5: `get <id> [property]`).
func (h *ipcHandler) Get(id, property string) string {
	state, ok := modules.LookupExternal(id)
	if !ok {
		return "error: unknown id " + id
	}
	snap := state.Snapshot()

	if property == "" {
		out, err := json.Marshal(snap)
		if err != nil {
			return "error: " + err.Error()
		}
		return string(out)
	}

	switch property {
	case "label":
		return snap.Label
	case "icon":
		return snap.Icon
	case "color":
		return snap.Foreground
	case "background":
		return snap.Background
	case "drawing":
		return fmt.Sprintf("%t", snap.Drawing)
	default:
		return "error: unknown property " + property
	}
}

// List emits a JSON array of every known module id: everything currently
// registered (popup-capable or external) plus every external id with a
// live state record but no module instance bound yet.
func (h *ipcHandler) List() string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, id := range h.app.registry.IDs() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range modules.ExternalIDs() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out, err := json.Marshal(ids)
	if err != nil {
		return "error: " + err.Error()
	}
	return string(out)
}

// Trigger forces an immediate update or toggles a module's popup
// out-of-band (§4.5: `trigger <id> update|popup`).
func (h *ipcHandler) Trigger(id, action string) string {
	mod, ok := h.app.registry.Lookup(id)
	if !ok {
		return "error: unknown id " + id
	}

	switch action {
	case "update":
		mod.Update()
		h.app.onMainThread(func() {
			for _, v := range h.app.views {
				v.Redraw()
			}
		})
		return "ok"
	case "popup":
		h.app.onMainThread(func() {
			h.app.popupMgr.Toggle(id)
		})
		return "ok"
	default:
		return "error: unknown action " + action
	}
}
