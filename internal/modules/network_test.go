package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRateBytesBelowKilo(t *testing.T) {
	assert.Equal(t, "512B", formatRate(512))
}

func TestFormatRateKilobytes(t *testing.T) {
	assert.Equal(t, "1.5K", formatRate(1536))
}

func TestFormatRateMegabytes(t *testing.T) {
	assert.Equal(t, "2.0M", formatRate(2<<20))
}
