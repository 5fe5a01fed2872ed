package neo

import "time"

// Calendar layouts used by the datasets.
//
// Source records carry approach times like "2020-Jan-01 12:30" in UTC.
// Output keeps minute precision; the input has no seconds, so neither
// does anything downstream.
const (
	calendarLayout = "2006-Jan-02 15:04"
	displayLayout  = "2006-01-02 15:04"
)

// ParseCalendar parses a dataset calendar string into a UTC timestamp.
// Empty or unparseable input yields nil.
func ParseCalendar(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(calendarLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// FormatTime renders a timestamp in the canonical minute-precision form
// used for display and serialization, e.g. "2020-01-01 12:30".
// A nil time renders as the empty string.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(displayLayout)
}

// ParseDate parses a bare "2006-01-02" date as used by the query filter
// flags, returning nil when the input is empty.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
