package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, time.Local)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Clock
		wantErr bool
	}{
		{name: "morning", in: "09:00", want: Clock{9, 0}},
		{name: "last minute", in: "23:59", want: Clock{23, 59}},
		{name: "midnight", in: "00:00", want: Clock{0, 0}},
		{name: "no colon", in: "0900", wantErr: true},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "whenever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.in, c.String())
		})
	}
}

func TestBeforeLimit(t *testing.T) {
	now := date(2025, time.March, 10, 22, 45)

	assert.True(t, BeforeLimit(now, "23:00"))
	assert.False(t, BeforeLimit(now, "22:45"))
	assert.False(t, BeforeLimit(now, "22:00"))
	// malformed limits never lock the user out
	assert.True(t, BeforeLimit(now, "not-a-time"))
}

func TestUntilLimit(t *testing.T) {
	now := date(2025, time.March, 10, 22, 45)

	h, m, ok := UntilLimit(now, "23:00")
	require.True(t, ok)
	assert.Equal(t, 0, h)
	assert.Equal(t, 15, m)

	h, m, ok = UntilLimit(date(2025, time.March, 10, 8, 0), "23:59")
	require.True(t, ok)
	assert.Equal(t, 15, h)
	assert.Equal(t, 59, m)

	_, _, ok = UntilLimit(now, "22:00")
	assert.False(t, ok)
	_, _, ok = UntilLimit(now, "22:45")
	assert.False(t, ok)
}

func TestReportLimitWarning(t *testing.T) {
	assert.Equal(t, "Quedan 15 minutos para el límite",
		ReportLimitWarning(date(2025, time.March, 10, 22, 45), "23:00"))
	assert.Equal(t, "Quedan 1h 30min para el límite",
		ReportLimitWarning(date(2025, time.March, 10, 21, 30), "23:00"))
	assert.Empty(t, ReportLimitWarning(date(2025, time.March, 10, 9, 0), "23:00"))
	assert.Empty(t, ReportLimitWarning(date(2025, time.March, 10, 23, 30), "23:00"))
}

func TestScheduleLimitWarning(t *testing.T) {
	assert.Equal(t, "Quedan 20 minutos para registrar",
		ScheduleLimitWarning(date(2025, time.March, 10, 23, 39), "23:59"))
	assert.Empty(t, ScheduleLimitWarning(date(2025, time.March, 10, 22, 0), "23:59"))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(date(2025, time.March, 10, 0, 1), date(2025, time.March, 10, 23, 59)))
	assert.False(t, SameDay(date(2025, time.March, 10, 23, 59), date(2025, time.March, 11, 0, 0)))
	assert.False(t, SameDay(date(2024, time.March, 10, 12, 0), date(2025, time.March, 10, 12, 0)))
}

func TestSameWeek(t *testing.T) {
	assert.True(t, SameWeek(date(2025, time.July, 8, 10, 0), date(2025, time.July, 11, 10, 0)))
	assert.False(t, SameWeek(date(2025, time.July, 8, 10, 0), date(2025, time.July, 20, 10, 0)))
	assert.False(t, SameWeek(date(2024, time.July, 8, 10, 0), date(2025, time.July, 8, 10, 0)))
}

func TestMondayOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "wednesday", in: date(2025, time.March, 12, 15, 30), want: date(2025, time.March, 10, 0, 0)},
		{name: "monday itself", in: date(2025, time.March, 10, 9, 0), want: date(2025, time.March, 10, 0, 0)},
		{name: "sunday belongs to previous monday", in: date(2025, time.March, 16, 9, 0), want: date(2025, time.March, 10, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MondayOfWeek(tt.in))
		})
	}
}

func TestTomorrow(t *testing.T) {
	got := Tomorrow(date(2025, time.March, 10, 22, 45))
	assert.Equal(t, date(2025, time.March, 11, 0, 0), got)

	// month rollover
	got = Tomorrow(date(2025, time.March, 31, 12, 0))
	assert.Equal(t, date(2025, time.April, 1, 0, 0), got)
}

func TestISODateRoundTrip(t *testing.T) {
	d, err := ParseISODate("2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", FormatISODate(d))

	_, err = ParseISODate("11/03/2025")
	require.Error(t, err)
}

func TestClockAt(t *testing.T) {
	c := Clock{Hour: 7, Minute: 30}
	at := c.At(date(2025, time.March, 11, 20, 0))
	assert.Equal(t, date(2025, time.March, 11, 7, 30), at)
}
