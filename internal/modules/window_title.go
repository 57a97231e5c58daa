package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// maxLengthDefault is the default truncation applied to window titles
// when a module doesn't override max_length.
const maxLengthDefault = 48

// WindowTitle polls the frontmost window's title every second.
type WindowTitle struct {
	Base

	maxLength int

	mu      sync.RWMutex
	title   string
	haveVal bool
}

// NewWindowTitle creates a WindowTitle module and starts its 1s producer.
func NewWindowTitle(id string, maxLength int) *WindowTitle {
	if maxLength <= 0 {
		maxLength = maxLengthDefault
	}
	w := &WindowTitle{Base: NewBase(id), maxLength: maxLength}
	w.RunProducer(time.Second, w.fetch)
	return w
}

func (w *WindowTitle) fetch() {
	title, err := runShell(`osascript -e 'tell application "System Events" to get name of front window of (first application process whose frontmost is true)'`)
	if err != nil {
		return
	}
	if len(title) > w.maxLength {
		title = title[:w.maxLength-1] + "…"
	}

	w.mu.Lock()
	changed := !w.haveVal || title != w.title
	w.title = title
	w.haveVal = true
	w.mu.Unlock()

	if changed {
		w.MarkDirty()
	}
}

func (w *WindowTitle) Render(theme.Theme) uitree.Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.haveVal || w.title == "" {
		return ErrorPlaceholder()
	}
	return uitree.Text(w.title)
}
