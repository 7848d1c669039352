package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderID_FollowsSlotOrder(t *testing.T) {
	assert.Equal(t, 1000, ReminderID(0))
	assert.Equal(t, 1001, ReminderID(1))
	assert.Equal(t, 1002, ReminderID(2))
}

func TestScheduleID_Deterministic(t *testing.T) {
	a := ScheduleID("entry-abc-123")
	b := ScheduleID("entry-abc-123")
	assert.Equal(t, a, b)
}

func TestScheduleID_StaysInsideBlock(t *testing.T) {
	for _, id := range []string{"", "x", "entry-1", "entry-2", "molto-lungo-identificatore-0000000001"} {
		n := ScheduleID(id)
		assert.GreaterOrEqual(t, n, 2000, "entry %q", id)
		assert.Less(t, n, 3000, "entry %q", id)
	}
}

func TestIDBlocks_NeverOverlap(t *testing.T) {
	assert.Less(t, ReminderID(999), 2000)
	assert.GreaterOrEqual(t, ScheduleID("any"), 2000)
	assert.GreaterOrEqual(t, AlertID(0), 3000)
	assert.Less(t, UnknownCategoryID(), 1000)
}

func TestStableHash_NonNegative(t *testing.T) {
	// "aaaa..." overflows int32 quickly; the reduced value must stay
	// non-negative regardless.
	s := ""
	for i := 0; i < 64; i++ {
		s += "a"
		assert.GreaterOrEqual(t, stableHash(s), 0)
	}
}
