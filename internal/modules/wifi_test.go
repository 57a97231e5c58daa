package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAfterColonSkipsLeadingSpaces(t *testing.T) {
	assert.Equal(t, 8, indexAfterColon("SSID:   home-network"))
}

func TestIndexAfterColonNoColonReturnsNegativeOne(t *testing.T) {
	assert.Equal(t, -1, indexAfterColon("home-network"))
}
