package modules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrftimeToGoLayoutTranslatesCommonDirectives(t *testing.T) {
	assert.Equal(t, "15:04:05", strftimeToGoLayout("%H:%M:%S"))
	assert.Equal(t, "2006-01-02", strftimeToGoLayout("%Y-%m-%d"))
	assert.Equal(t, "Jan 02 2006", strftimeToGoLayout("%b %d %Y"))
	assert.Equal(t, "Mon 03:04 PM", strftimeToGoLayout("%a %I:%M %p"))
}

func TestStrftimeToGoLayoutPassesThroughLiteralPercent(t *testing.T) {
	assert.Equal(t, "100%", strftimeToGoLayout("100%%"))
}

func TestStrftimeToGoLayoutLeavesGoLayoutUnchanged(t *testing.T) {
	// A format with no '%' directive is assumed to already be a Go
	// reference-time layout (back-compat with configs written before
	// strftime support existed).
	assert.Equal(t, "15:04:05", strftimeToGoLayout("15:04:05"))
	assert.Equal(t, "Jan 2", strftimeToGoLayout("Jan 2"))
}

func TestNewClockTranslatesStrftimeFormat(t *testing.T) {
	c := NewClock("clock", "%H:%M:%S")
	assert.Equal(t, time.Now().Format("15:04:05"), c.currentText())
}

func TestNewClockDefaultsToStrftimeHMS(t *testing.T) {
	c := NewClock("clock", "")
	assert.Equal(t, time.Now().Format("15:04:05"), c.currentText())
}

func TestClockUpdateReportsChangeOnlyWhenTextChanges(t *testing.T) {
	c := NewClock("clock", "%Y")
	assert.True(t, c.Update(), "first call always reports change")
	assert.False(t, c.Update(), "same year, no change")
}
