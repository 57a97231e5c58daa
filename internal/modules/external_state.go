package modules

import "sync"

// ExternalState is one externally-controlled module's mutable record
// (§3: "External module state"). The embedded RWMutex guards all fields:
// IPC mutation (External.SetProperty) writes under it, and bar rendering
// and the IPC `get` command read through Snapshot.
type ExternalState struct {
	mu         sync.RWMutex
	Label      string
	Icon       string
	Foreground string // resolved hex, "" = theme default
	Background string
	Drawing    bool
}

func (s *ExternalState) snapshot() ExternalState {
	return s.Snapshot()
}

// Snapshot returns a point-in-time copy of s, safe to read without
// holding s's lock. Used by bar rendering and by the IPC `get` command
// (§4.5).
func (s *ExternalState) Snapshot() ExternalState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ExternalState{
		Label:      s.Label,
		Icon:       s.Icon,
		Foreground: s.Foreground,
		Background: s.Background,
		Drawing:    s.Drawing,
	}
}

// externalStates is the process-global id -> *ExternalState map (§3).
// Lookups hold only the map's own RWMutex, and only briefly; per-entry
// mutation takes the entry's lock, never the registry's or the bar's
// rendering lock.
var (
	externalMu    sync.RWMutex
	externalStates = make(map[string]*ExternalState)
)

// RegisterExternal creates (or returns the existing) shared state record
// for an externally-controlled module id.
func RegisterExternal(id string) *ExternalState {
	externalMu.Lock()
	defer externalMu.Unlock()
	if s, ok := externalStates[id]; ok {
		return s
	}
	s := &ExternalState{Label: "--"}
	externalStates[id] = s
	return s
}

// LookupExternal returns the shared state for id, if any module has
// registered it.
func LookupExternal(id string) (*ExternalState, bool) {
	externalMu.RLock()
	defer externalMu.RUnlock()
	s, ok := externalStates[id]
	return s, ok
}

// UnregisterExternal removes id's shared state, called from
// Module.Stop() for external modules.
func UnregisterExternal(id string) {
	externalMu.Lock()
	defer externalMu.Unlock()
	delete(externalStates, id)
}

// ExternalIDs returns a snapshot of every registered external module id,
// used by the IPC "list" command.
func ExternalIDs() []string {
	externalMu.RLock()
	defer externalMu.RUnlock()
	ids := make([]string, 0, len(externalStates))
	for id := range externalStates {
		ids = append(ids, id)
	}
	return ids
}
