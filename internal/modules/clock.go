package modules

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Clock is purely derived from the current wall clock: it has no
// producer thread, and Update simply checks whether the formatted string
// has changed since the last call (§4.4 table: "Clock / Date / DateTime").
type Clock struct {
	Base
	format   string
	lastText atomic.Value // string
}

// strftimeToGoLayout translates a chrono/strftime format string (the
// vocabulary the config schema and original_source/src/modules/clock.rs
// both use, e.g. "%H:%M:%S") into a Go reference-time layout. A format
// with no '%' directive is assumed to already be a Go layout and is
// passed through unchanged, so existing Go-layout configs keep working.
func strftimeToGoLayout(format string) string {
	if !strings.Contains(format, "%") {
		return format
	}
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'd':
			b.WriteString("02")
		case 'e':
			b.WriteString("_2")
		case 'H':
			b.WriteString("15")
		case 'I':
			b.WriteString("03")
		case 'M':
			b.WriteString("04")
		case 'S':
			b.WriteString("05")
		case 'p':
			b.WriteString("PM")
		case 'A':
			b.WriteString("Monday")
		case 'a':
			b.WriteString("Mon")
		case 'B':
			b.WriteString("January")
		case 'b':
			b.WriteString("Jan")
		case 'Z':
			b.WriteString("MST")
		case 'z':
			b.WriteString("-0700")
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}

// NewClock creates a clock module rendering time.Now() with format, a
// strftime-style layout (e.g. "%H:%M:%S") translated once at
// construction time via strftimeToGoLayout.
func NewClock(id, format string) *Clock {
	if format == "" {
		format = "%H:%M:%S"
	}
	c := &Clock{Base: NewBase(id), format: strftimeToGoLayout(format)}
	c.lastText.Store("")
	return c
}

func (c *Clock) currentText() string {
	return time.Now().Format(c.format)
}

// Update checks the wall clock once per call; the bar view's 500ms/1s
// poll tick is what bounds how often this actually runs.
func (c *Clock) Update() bool {
	text := c.currentText()
	prev := c.lastText.Swap(text)
	return prev == nil || prev.(string) != text
}

func (c *Clock) Render(theme.Theme) uitree.Node {
	return uitree.Text(c.currentText())
}
