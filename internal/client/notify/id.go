package notify

import "math/rand"

// Id-space partitions. Each category owns a block of one thousand ids,
// so ids never collide across categories.
const (
	reminderIDBase = 1000
	scheduleIDBase = 2000
	alertIDBase    = 3000
	idSpan         = 1000
)

// ReminderID maps a reminder slot (0-based position in the configured
// reminder hours) to its notification id.
func ReminderID(slot int) int {
	return reminderIDBase + slot
}

// ScheduleID maps a schedule entry id to its notification id. The hash
// is deterministic, so the same entry always lands on the same id, but
// distinct entries may collide within the bounded block; see the package
// comment for why that is accepted.
func ScheduleID(entryID string) int {
	return scheduleIDBase + stableHash(entryID)%idSpan
}

// AlertID maps a numeric alert identifier to its notification id.
// Reserved for future use.
func AlertID(n int) int {
	return alertIDBase + n
}

// UnknownCategoryID is the degenerate fallback for a category outside
// the closed set: a pseudo-random id below every category block. It
// should not occur in practice.
func UnknownCategoryID() int {
	return rand.Intn(idSpan)
}

// stableHash is a polynomial rolling hash (h = h*31 + c, truncated to
// 32 bits) reduced to a non-negative value.
func stableHash(s string) int {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		// int32 min has no positive counterpart; pin it inside the block.
		if h == -1<<31 {
			return 0
		}
		h = -h
	}
	return int(h)
}
