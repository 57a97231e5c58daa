package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWidthsNonFlexKeepsNaturalWidth(t *testing.T) {
	specs := []WidthSpec{{Flex: false, NaturalWidth: 42}}
	got := ResolveWidths(specs, 500)
	assert.Equal(t, []float64{42}, got)
}

func TestResolveWidthsFlexFillsRemainingSpace(t *testing.T) {
	specs := []WidthSpec{
		{Flex: false, NaturalWidth: 100},
		{Flex: true, MinWidth: 0, MaxWidth: 1000},
	}
	got := ResolveWidths(specs, 300)
	// remaining = 300 - 100 - 4 (one gap) = 196
	assert.Equal(t, []float64{100, 196}, got)
}

func TestResolveWidthsFlexClampedToRange(t *testing.T) {
	specs := []WidthSpec{
		{Flex: true, MinWidth: 50, MaxWidth: 80},
		{Flex: true, MinWidth: 50, MaxWidth: 80},
	}
	got := ResolveWidths(specs, 1000)
	assert.Equal(t, []float64{80, 80}, got)

	specs = []WidthSpec{
		{Flex: true, MinWidth: 50, MaxWidth: 80},
	}
	got = ResolveWidths(specs, 10)
	assert.Equal(t, []float64{50}, got)
}
