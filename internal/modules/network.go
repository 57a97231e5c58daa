package modules

import (
	"fmt"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/net"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Network reports aggregate interface throughput, sampled every 5s like
// its sibling Wifi module (§4.4 closed module vocabulary includes
// `network` alongside `wifi`; no dedicated cadence is called out, so it
// shares Wifi's 5s cadence).
type Network struct {
	Base

	mu       sync.RWMutex
	rxPerSec uint64
	txPerSec uint64
	haveVal  bool

	lastSample time.Time
	lastRx     uint64
	lastTx     uint64
}

// NewNetwork creates a Network module and starts its 5s producer.
func NewNetwork(id string) *Network {
	n := &Network{Base: NewBase(id)}
	n.RunProducer(5*time.Second, n.fetch)
	return n
}

func (n *Network) fetch() {
	counters, err := net.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return
	}
	total := counters[0]
	now := time.Now()

	n.mu.Lock()
	if !n.lastSample.IsZero() {
		elapsed := now.Sub(n.lastSample).Seconds()
		if elapsed > 0 {
			n.rxPerSec = uint64(float64(total.BytesRecv-n.lastRx) / elapsed)
			n.txPerSec = uint64(float64(total.BytesSent-n.lastTx) / elapsed)
			n.haveVal = true
		}
	}
	n.lastSample, n.lastRx, n.lastTx = now, total.BytesRecv, total.BytesSent
	n.mu.Unlock()

	if n.haveVal {
		n.MarkDirty()
	}
}

func (n *Network) Render(theme.Theme) uitree.Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.haveVal {
		return LoadingSkeleton(56, 14)
	}
	return uitree.Text(fmt.Sprintf("↓%s ↑%s", formatRate(n.rxPerSec), formatRate(n.txPerSec)))
}

func formatRate(bytesPerSec uint64) string {
	switch {
	case bytesPerSec >= 1<<20:
		return fmt.Sprintf("%.1fM", float64(bytesPerSec)/(1<<20))
	case bytesPerSec >= 1<<10:
		return fmt.Sprintf("%.1fK", float64(bytesPerSec)/(1<<10))
	default:
		return fmt.Sprintf("%dB", bytesPerSec)
	}
}
