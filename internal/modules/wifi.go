package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Wifi polls the associated SSID every 5 seconds. It carries no
// value() reading (§4.4: "—").
type Wifi struct {
	Base

	mu      sync.RWMutex
	ssid    string
	haveVal bool
}

// NewWifi creates a Wifi module and starts its 5s producer.
func NewWifi(id string) *Wifi {
	w := &Wifi{Base: NewBase(id)}
	w.RunProducer(5*time.Second, w.fetch)
	return w
}

func (w *Wifi) fetch() {
	out, err := runShell(`networksetup -getairportnetwork en0`)
	if err != nil {
		return
	}
	ssid := out
	if idx := indexAfterColon(out); idx >= 0 {
		ssid = out[idx:]
	}

	w.mu.Lock()
	changed := !w.haveVal || ssid != w.ssid
	w.ssid = ssid
	w.haveVal = true
	w.mu.Unlock()

	if changed {
		w.MarkDirty()
	}
}

func indexAfterColon(s string) int {
	for i, r := range s {
		if r == ':' {
			j := i + 1
			for j < len(s) && s[j] == ' ' {
				j++
			}
			return j
		}
	}
	return -1
}

func (w *Wifi) Render(theme.Theme) uitree.Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.haveVal || w.ssid == "" {
		return LoadingSkeleton(48, 14)
	}
	return uitree.Row(4, uitree.Icon("wifi"), uitree.Text(w.ssid))
}
