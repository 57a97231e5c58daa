package modules

import (
	"fmt"
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Weather fetches current conditions via HTTP (through a shell command
// runner per the spec's Out-of-scope note on HTTP fetching), on the
// configured cadence (typically 600s). Its loading state is exposed via
// IsLoading so the bar view can render a placeholder during the first
// fetch (§4.4, §7).
type Weather struct {
	Base

	location string

	mu         sync.RWMutex
	conditions string
	tempC      float64
	haveVal    bool
}

// NewWeather creates a Weather module for location and starts its
// producer at the given interval (defaulting to 600s).
func NewWeather(id, location string, interval time.Duration) *Weather {
	if interval <= 0 {
		interval = 600 * time.Second
	}
	w := &Weather{Base: NewBase(id), location: location}
	w.SetLoading(true)
	w.RunProducer(interval, w.fetch)
	return w
}

func (w *Weather) fetch() {
	out, err := runShell(fmt.Sprintf(`curl -fsS "https://wttr.in/%s?format=%%C+%%t"`, w.location))
	w.SetLoading(false)
	if err != nil || out == "" {
		return // keep last value
	}

	w.mu.Lock()
	changed := !w.haveVal || out != w.conditions
	w.conditions = out
	w.haveVal = true
	w.mu.Unlock()

	if changed {
		w.MarkDirty()
	}
}

func (w *Weather) Render(theme.Theme) uitree.Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.IsLoading() && !w.haveVal {
		return LoadingSkeleton(56, 14)
	}
	if !w.haveVal {
		return ErrorPlaceholder()
	}
	return uitree.Text(w.conditions)
}
