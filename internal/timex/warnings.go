package timex

import (
	"fmt"
	"time"
)

// ReportLimitWarning builds the countdown text shown near the report
// submission deadline. Within the last hour it counts minutes; within the
// last two hours it counts hours and minutes. Otherwise, or once the limit
// has passed, it returns "".
func ReportLimitWarning(now time.Time, limit string) string {
	h, m, ok := UntilLimit(now, limit)
	if !ok {
		return ""
	}
	if h == 0 && m <= 60 {
		return fmt.Sprintf("Quedan %d minutos para el límite", m)
	}
	if h <= 2 {
		return fmt.Sprintf("Quedan %dh %dmin para el límite", h, m)
	}
	return ""
}

// ScheduleLimitWarning builds the countdown text shown near the schedule
// registration deadline. Only the last thirty minutes produce a warning.
func ScheduleLimitWarning(now time.Time, limit string) string {
	h, m, ok := UntilLimit(now, limit)
	if !ok {
		return ""
	}
	if h == 0 && m <= 30 {
		return fmt.Sprintf("Quedan %d minutos para registrar", m)
	}
	return ""
}
