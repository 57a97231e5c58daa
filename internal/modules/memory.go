package modules

import (
	"context"
	"fmt"
	"sync"
	"time"

	memutil "github.com/shirou/gopsutil/v4/mem"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Memory polls physical memory usage every 5 seconds via gopsutil.
// value() reports 100-usage (low usage is good), same inversion as CPU.
type Memory struct {
	Base

	mu      sync.RWMutex
	usage   float64
	haveVal bool
}

// NewMemory creates a Memory module and starts its 5s producer.
func NewMemory(id string) *Memory {
	m := &Memory{Base: NewBase(id)}
	m.RunProducer(5*time.Second, m.fetch)
	return m
}

func (m *Memory) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stat, err := memutil.VirtualMemoryWithContext(ctx)
	if err != nil {
		return
	}

	m.mu.Lock()
	changed := !m.haveVal || stat.UsedPercent != m.usage
	m.usage = stat.UsedPercent
	m.haveVal = true
	m.mu.Unlock()

	if changed {
		m.MarkDirty()
	}
}

func (m *Memory) Value() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.haveVal {
		return 0, false
	}
	return 100 - m.usage, true
}

func (m *Memory) Render(theme.Theme) uitree.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.haveVal {
		return LoadingSkeleton(32, 14)
	}
	return uitree.Text(fmt.Sprintf("%.0f%%", m.usage))
}
