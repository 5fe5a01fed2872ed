package neo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendar(t *testing.T) {
	got := ParseCalendar("1910-May-20 12:49")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(1910, time.May, 20, 12, 49, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseCalendar(""))
	assert.Nil(t, ParseCalendar("2020-13-01 00:00"))
	assert.Nil(t, ParseCalendar("garbage"))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-01-01 00:00", FormatTime(&ts))
	assert.Equal(t, "", FormatTime(nil))

	// Seconds never leak into the canonical format
	withSeconds := time.Date(2020, time.January, 1, 12, 30, 59, 0, time.UTC)
	assert.Equal(t, "2020-01-01 12:30", FormatTime(&withSeconds))
}

func TestParseCalendarFormatTimeRoundTrip(t *testing.T) {
	got := ParseCalendar("2020-Jan-01 12:30")
	require.NotNil(t, got)
	assert.Equal(t, "2020-01-01 12:30", FormatTime(got))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("01/02/2020")
	assert.Error(t, err)
}
