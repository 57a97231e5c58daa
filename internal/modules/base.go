package modules

import (
	"sync/atomic"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Base is embedded by every concrete module kind. It owns the generic
// producer-thread plumbing described in §4.4: a dirty flag set by the
// producer and swap-cleared by Update, a loading flag, a per-module stop
// signal, and the generation snapshot taken at construction so the
// producer can notice a bar rebuild and exit (§5).
//
// Base also supplies no-op defaults for every optional capability
// (PopupSpec, RenderPopup, OnPopupEvent, OnPopupAction, SetProperty,
// Value) so concrete modules only need to override what they use.
type Base struct {
	id      string
	gen     uint64
	dirty   atomic.Bool
	loading atomic.Bool
	stopCh  chan struct{}
	stopped atomic.Bool
}

// NewBase constructs a Base bound to the current module generation.
func NewBase(id string) Base {
	return Base{id: id, gen: CurrentGeneration(), stopCh: make(chan struct{})}
}

// ID returns the module's unique identifier.
func (b *Base) ID() string { return b.id }

// MarkDirty flips the dirty flag after new state has been published
// (release semantics; see §5 "Ordering guarantees").
func (b *Base) MarkDirty() { b.dirty.Store(true) }

// Update swap-clears the dirty flag, reporting whether the producer
// published a change since the last call (Invariant P4).
func (b *Base) Update() bool { return b.dirty.Swap(false) }

// IsLoading reports the module's current loading state.
func (b *Base) IsLoading() bool { return b.loading.Load() }

// SetLoading updates the loading state.
func (b *Base) SetLoading(v bool) { b.loading.Store(v) }

// Stop signals the producer goroutine to exit; safe to call more than
// once and from any goroutine.
func (b *Base) Stop() {
	if b.stopped.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
}

// IsCurrentGeneration reports whether the bar has rebuilt since this
// module was constructed; producers check this every loop iteration.
func (b *Base) IsCurrentGeneration() bool { return b.gen == CurrentGeneration() }

// RunProducer starts a goroutine that calls fetch every interval until
// Stop is called or the module generation advances past the one it was
// built with. The sleep interval doubles as the maximum teardown
// latency (§5).
func (b *Base) RunProducer(interval time.Duration, fetch func()) {
	go func() {
		for {
			select {
			case <-b.stopCh:
				return
			default:
			}
			if !b.IsCurrentGeneration() {
				return
			}
			fetch()
			select {
			case <-b.stopCh:
				return
			case <-time.After(interval):
			}
		}
	}()
}

// Value is the default "no threshold coloring" implementation.
func (b *Base) Value() (float64, bool) { return 0, false }

// PopupSpec is the default "no popup" implementation.
func (b *Base) PopupSpec() (PopupSpec, bool) { return PopupSpec{}, false }

// RenderPopup is the default "no popup" implementation.
func (b *Base) RenderPopup(theme.Theme) (uitree.Node, bool) { return uitree.Node{}, false }

// OnPopupEvent is a no-op default.
func (b *Base) OnPopupEvent(PopupEvent) {}

// OnPopupAction is a no-op default.
func (b *Base) OnPopupAction(PopupAction) {}

// SetProperty is the default "no recognized keys" implementation.
func (b *Base) SetProperty(string, string) bool { return false }

// LoadingSkeleton renders a muted placeholder for modules whose producer
// has not yet published a first value.
func LoadingSkeleton(w, h float64) uitree.Node {
	return uitree.Skeleton(w, h)
}

// ErrorPlaceholder renders the neutral "--" readout for modules whose
// last fetch failed outright (§7: "User-visible failure").
func ErrorPlaceholder() uitree.Node {
	n := uitree.Text("--")
	n.Muted = true
	return n
}
