package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempToValueBoundaries(t *testing.T) {
	assert.Equal(t, 100.0, tempToValue(30))
	assert.Equal(t, 0.0, tempToValue(100))
}

func TestTempToValueClampsBeyondRange(t *testing.T) {
	assert.Equal(t, 100.0, tempToValue(10))
	assert.Equal(t, 0.0, tempToValue(150))
}

func TestTempToValueMidpoint(t *testing.T) {
	assert.InDelta(t, 50.0, tempToValue(65), 0.01)
}
