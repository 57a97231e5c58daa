package modules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapOffsetRoundsToNearestQuarterHour(t *testing.T) {
	// now=10, raw offset 7 -> target minute 17 -> nearest /15 is 15 -> offset 5
	assert.Equal(t, 5.0, snapOffset(7, 10))
}

func TestSnapOffsetClampsToPlusMinusTwelveHours(t *testing.T) {
	got := snapOffset(10000, 0)
	assert.LessOrEqual(t, got, 720.0)

	got = snapOffset(-10000, 0)
	assert.GreaterOrEqual(t, got, -720.0)
}

func TestSliderToOffsetMapsFractionRangeAndSnaps(t *testing.T) {
	// fraction=0 -> raw -720, already a multiple of 15 relative to now=0
	assert.Equal(t, -720.0, sliderToOffset(0, 0))
	// fraction=1 -> raw +720
	assert.Equal(t, 720.0, sliderToOffset(1, 0))
	// fraction=0.5 -> raw 0 -> offset 0
	assert.Equal(t, 0.0, sliderToOffset(0.5, 0))
}

func TestWeeksInMonthFebruaryNonLeapYear(t *testing.T) {
	// Feb 2023: starts Wednesday (3 leading blanks in a Sunday-first
	// grid), 28 days -> 31 cells -> 5 rows; verify it's within the sane
	// 4-6 range rather than hardcoding the exact row count.
	got := weeksInMonth(2023, 2)
	assert.GreaterOrEqual(t, got, 4)
	assert.LessOrEqual(t, got, 6)
}

func TestOnPopupActionSliderSetIgnoredOutsideDrag(t *testing.T) {
	// §4.4: "DragStart/DragEnd gate SliderSet{value}; values outside a
	// drag are ignored."
	c := NewCalendar("calendar", nil)
	defer c.Stop()

	c.OnPopupAction(PopupAction{Kind: ActionSliderSet, Value: 1})
	assert.Equal(t, 0.0, c.offsetMinutes, "slider value applied without a drag in progress")

	c.OnPopupAction(PopupAction{Kind: ActionDragStart})
	c.OnPopupAction(PopupAction{Kind: ActionSliderSet, Value: 1})
	// The snapped offset is relative to the current minute, so it is only
	// exactly 720 when the minute is a multiple of 15.
	want := sliderToOffset(1, time.Now().Minute())
	assert.Equal(t, want, c.offsetMinutes, "slider value applied while dragging")

	c.OnPopupAction(PopupAction{Kind: ActionDragEnd})
	c.OnPopupAction(PopupAction{Kind: ActionSliderSet, Value: 0})
	assert.Equal(t, want, c.offsetMinutes, "slider value applied again after drag ended")
}
