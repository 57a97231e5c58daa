package modules

import (
	"context"
	"fmt"
	"sync"
	"time"

	cpuutil "github.com/shirou/gopsutil/v4/cpu"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// CPU polls overall CPU utilization every second via gopsutil (grounded
// on Jesssullivan-pp's sysmetrics collector). Its value() reports
// 100-usage, since the spec inverts "low usage is good" into the shared
// threshold-coloring rule (§4.4 table, Invariant V2).
type CPU struct {
	Base

	mu      sync.RWMutex
	usage   float64
	haveVal bool
}

// NewCPU creates a CPU module and starts its 1s producer.
func NewCPU(id string) *CPU {
	c := &CPU{Base: NewBase(id)}
	c.RunProducer(time.Second, c.fetch)
	return c
}

func (c *CPU) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), 900*time.Millisecond)
	defer cancel()

	percents, err := cpuutil.PercentWithContext(ctx, 0, false)
	if err != nil || len(percents) == 0 {
		return // keep last value (§7: producer failure)
	}

	c.mu.Lock()
	changed := !c.haveVal || percents[0] != c.usage
	c.usage = percents[0]
	c.haveVal = true
	c.mu.Unlock()

	if changed {
		c.MarkDirty()
	}
}

func (c *CPU) Value() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.haveVal {
		return 0, false
	}
	return 100 - c.usage, true
}

func (c *CPU) Render(theme.Theme) uitree.Node {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.haveVal {
		return LoadingSkeleton(32, 14)
	}
	return uitree.Text(fmt.Sprintf("%.0f%%", c.usage))
}
