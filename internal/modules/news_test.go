package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNewsItemsEmptyRawYieldsNoItems(t *testing.T) {
	assert.Nil(t, parseNewsItems(""))
}

func TestParseNewsItemsNonEmptyRawYieldsOneItem(t *testing.T) {
	got := parseNewsItems("v1.2.3 released")
	assert.Len(t, got, 1)
	assert.Equal(t, "v1.2.3 released", got[0].Title)
}

func TestNewNewsDefaultsPopupWidth(t *testing.T) {
	n := NewNews("news-test", 0)
	defer n.Stop()
	spec, ok := n.PopupSpec()
	assert.True(t, ok)
	assert.Equal(t, 480.0, spec.Width)
}
