package modules

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// calendarMaxPopupHeight caps the calendar popup's computed height
// (§4.4: "CALENDAR_MAX_POPUP_HEIGHT = 720").
const calendarMaxPopupHeight = 720

// minutesPerScrubStep is the horizontal-scroll deflection, in pixels,
// that advances offset_minutes by one 15-minute step (§4.4 "Time
// scrubbing").
const minutesPerScrubStep = 8.0

// Calendar is the most elaborate popup module: a month grid plus a
// scrubbable, multi-timezone clock (§4.4 "Calendar popup specifics").
type Calendar struct {
	Base

	timezones []config.TimezoneConfig

	mu                sync.Mutex
	displayedYear     int
	displayedMonth    time.Month
	offsetMinutes     float64
	scrollAccumulator float64
	isDragging        bool
}

// NewCalendar creates a Calendar module anchored on the current month
// and starts its 1s producer (§4.4 cadence table: "1s in update").
func NewCalendar(id string, timezones []config.TimezoneConfig) *Calendar {
	now := time.Now()
	c := &Calendar{
		Base:           NewBase(id),
		timezones:      timezones,
		displayedYear:  now.Year(),
		displayedMonth: now.Month(),
	}
	c.RunProducer(time.Second, c.tick)
	return c
}

// tick marks the module dirty every second so the bar's minute/hour
// readout and any open popup's offset clock stay current (§4.4).
func (c *Calendar) tick() {
	c.MarkDirty()
}

// snapOffset implements §4.4's slider-to-minutes formula: given the
// current local wall minute m, a raw offset r resolves to the nearest
// clock-aligned 15-minute boundary (Invariant P6).
func snapOffset(r float64, nowMinute int) float64 {
	if r < -720 {
		r = -720
	} else if r > 720 {
		r = 720
	}
	m := float64(nowMinute)
	return 15*math.Round((m+r)/15) - m
}

// sliderToOffset implements Boundary B2: fraction in [0,1] maps
// linearly onto [-720, 720] before snapping.
func sliderToOffset(fraction float64, nowMinute int) float64 {
	raw := fraction*1440 - 720
	return snapOffset(raw, nowMinute)
}

func (c *Calendar) Render(theme.Theme) uitree.Node {
	return uitree.Row(4, uitree.Icon("calendar"), uitree.Text(time.Now().Format("Mon Jan 2")))
}

// PopupSpec's height follows §4.4's two-section formula: a month-grid
// section sized by week count, plus a fixed-per-zone timezone section,
// capped at calendarMaxPopupHeight.
func (c *Calendar) PopupSpec() (PopupSpec, bool) {
	c.mu.Lock()
	year, month := c.displayedYear, c.displayedMonth
	c.mu.Unlock()

	weeks := weeksInMonth(year, month)
	calendarSection := 44 + 20 + float64(weeks)*42 + 16
	timezoneSection := 70 + float64(len(c.timezones))*50
	height := calendarSection + timezoneSection
	if height > calendarMaxPopupHeight {
		height = calendarMaxPopupHeight
	}
	return PopupSpec{Width: 320, Height: height, Anchor: "center", PopupType: PopupTypePopup}, true
}

// weeksInMonth returns the number of calendar week-rows a month-grid
// needs to display the full month, assuming a Sunday-first grid.
func weeksInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	leadingBlanks := int(first.Weekday())
	cells := leadingBlanks + last.Day()
	return (cells + 6) / 7
}

func (c *Calendar) RenderPopup(theme.Theme) (uitree.Node, bool) {
	c.mu.Lock()
	year, month, offset := c.displayedYear, c.displayedMonth, c.offsetMinutes
	c.mu.Unlock()

	grid := uitree.Node{Kind: uitree.KindGrid, Columns: 7}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < int(first.Weekday()); i++ {
		grid.Children = append(grid.Children, uitree.Text(""))
	}
	last := first.AddDate(0, 1, -1)
	for d := 1; d <= last.Day(); d++ {
		grid.Children = append(grid.Children, uitree.Text(fmt.Sprintf("%d", d)))
	}

	shifted := time.Now().Add(time.Duration(offset) * time.Minute)
	rows := []uitree.Node{
		uitree.Text(fmt.Sprintf("%s %d", month, year)),
		grid,
		uitree.Node{Kind: uitree.KindSlider, Value: (offset + 720) / 1440},
	}
	for _, tz := range c.timezones {
		rows = append(rows, uitree.Text(c.renderTimezoneLine(tz, shifted)))
	}
	return uitree.Column(8, rows...), true
}

// renderTimezoneLine computes the local-vs-zone day diff vocabulary
// carried over from the original implementation (§4.4 supplement).
func (c *Calendar) renderTimezoneLine(tz config.TimezoneConfig, shifted time.Time) string {
	localDay := shifted.YearDay()
	zoneTime := shifted.UTC().Add(time.Duration(tz.OffsetHours * float64(time.Hour)))
	zoneDay := zoneTime.YearDay()

	var dayWord string
	switch zoneDay - localDay {
	case 0:
		dayWord = "today"
	case 1, -364, -365:
		dayWord = "tomorrow"
	case -1, 364, 365:
		dayWord = "yesterday"
	default:
		diff := zoneDay - localDay
		dayWord = fmt.Sprintf("%+d days", diff)
	}
	return fmt.Sprintf("%s: %s (%s)", tz.Name, zoneTime.Format("15:04"), dayWord)
}

func (c *Calendar) OnPopupAction(action PopupAction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch action.Kind {
	case ActionPrev:
		c.displayedMonth--
		if c.displayedMonth < time.January {
			c.displayedMonth = time.December
			c.displayedYear--
		}
	case ActionNext:
		c.displayedMonth++
		if c.displayedMonth > time.December {
			c.displayedMonth = time.January
			c.displayedYear++
		}
	case ActionToday:
		now := time.Now()
		c.displayedYear, c.displayedMonth = now.Year(), now.Month()
		c.offsetMinutes = 0
	case ActionReset:
		c.offsetMinutes = 0
	case ActionDragStart:
		c.isDragging = true
	case ActionDragEnd:
		c.isDragging = false
	case ActionSliderSet:
		// §4.4: "DragStart/DragEnd gate SliderSet{value}; values outside
		// a drag are ignored."
		if !c.isDragging {
			return
		}
		c.offsetMinutes = sliderToOffset(action.Value, time.Now().Minute())
	}
	c.MarkDirty()
}

// OnPopupEvent handles horizontal-scroll time scrubbing (§4.4: "Time
// scrubbing"). Accumulated pixel deflection advances offset_minutes by
// 15 per minutesPerScrubStep px, then snaps to a clock boundary.
func (c *Calendar) OnPopupEvent(ev PopupEvent) {
	if ev.Kind != PopupEventScroll {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scrollAccumulator += ev.DeltaX
	steps := math.Trunc(c.scrollAccumulator / minutesPerScrubStep)
	if steps == 0 {
		return
	}
	c.scrollAccumulator -= steps * minutesPerScrubStep
	raw := c.offsetMinutes + steps*15
	c.offsetMinutes = snapOffset(raw, time.Now().Minute())
	c.MarkDirty()
}

func (c *Calendar) HasPopup() bool { return true }
