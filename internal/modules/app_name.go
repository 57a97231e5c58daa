package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// AppName tracks the frontmost application's name. Its primary update
// path is event-driven (a workspace-changed notification pushed via
// NotifyWorkspaceChanged); the 5s producer is only a fallback for when
// no such event arrives (§4.4: "Primary path: workspace-changed event").
type AppName struct {
	Base

	mu      sync.RWMutex
	name    string
	haveVal bool

	query func() (string, error)
}

// NewAppName creates an AppName module with query as its frontmost-app
// lookup (an opaque OS query per the spec's Out-of-scope list) and
// starts its fallback 5s producer.
func NewAppName(id string, query func() (string, error)) *AppName {
	if query == nil {
		query = func() (string, error) { return runShell(`osascript -e 'tell application "System Events" to get name of first application process whose frontmost is true'`) }
	}
	a := &AppName{Base: NewBase(id), query: query}
	a.RunProducer(5*time.Second, a.fetch)
	return a
}

func (a *AppName) fetch() {
	name, err := a.query()
	if err != nil {
		return
	}
	a.setName(name)
}

// NotifyWorkspaceChanged is the event-driven fast path: called by the
// App shell when the OS reports a frontmost-application change.
func (a *AppName) NotifyWorkspaceChanged(name string) {
	a.setName(name)
}

func (a *AppName) setName(name string) {
	a.mu.Lock()
	changed := !a.haveVal || name != a.name
	a.name = name
	a.haveVal = true
	a.mu.Unlock()
	if changed {
		a.MarkDirty()
	}
}

func (a *AppName) Render(theme.Theme) uitree.Node {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.haveVal {
		return LoadingSkeleton(64, 14)
	}
	return uitree.Text(a.name)
}
