package modules

import (
	"context"
	"fmt"
	"sync"
	"time"

	diskutil "github.com/shirou/gopsutil/v4/disk"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Disk polls usage for a single mount path every 10 seconds. Instances
// are keyed by mount path, per §4.4.
type Disk struct {
	Base

	path string

	mu      sync.RWMutex
	usage   float64
	haveVal bool
}

// NewDisk creates a Disk module watching path (defaulting to "/") and
// starts its 10s producer.
func NewDisk(id, path string) *Disk {
	if path == "" {
		path = "/"
	}
	d := &Disk{Base: NewBase(id), path: path}
	d.RunProducer(10*time.Second, d.fetch)
	return d
}

func (d *Disk) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stat, err := diskutil.UsageWithContext(ctx, d.path)
	if err != nil {
		return
	}

	d.mu.Lock()
	changed := !d.haveVal || stat.UsedPercent != d.usage
	d.usage = stat.UsedPercent
	d.haveVal = true
	d.mu.Unlock()

	if changed {
		d.MarkDirty()
	}
}

func (d *Disk) Value() (float64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.haveVal {
		return 0, false
	}
	return 100 - d.usage, true
}

func (d *Disk) Render(theme.Theme) uitree.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.haveVal {
		return LoadingSkeleton(32, 14)
	}
	return uitree.Text(fmt.Sprintf("%.0f%%", d.usage))
}
