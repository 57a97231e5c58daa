package modules

// NewDate creates a date-only derived module using the given layout
// format, defaulting to "Jan 2".
func NewDate(id, format string) *Clock {
	if format == "" {
		format = "Jan 2"
	}
	return NewClock(id, format)
}

// NewDateTime creates a combined date+time derived module, defaulting to
// "Jan 2 15:04".
func NewDateTime(id, format string) *Clock {
	if format == "" {
		format = "Jan 2 15:04"
	}
	return NewClock(id, format)
}
