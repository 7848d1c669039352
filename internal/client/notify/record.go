package notify

import "time"

// Trigger says when a notification fires: either once at an instant, or
// every day at a wall-clock time. Exactly one of the two forms is set.
type Trigger struct {
	// At is the firing instant of a one-shot notification.
	At time.Time

	// Daily marks a recurring notification firing every day at
	// Hour:Minute, surviving device idle.
	Daily  bool
	Hour   int
	Minute int
}

// OneShot triggers once at t.
func OneShot(t time.Time) Trigger {
	return Trigger{At: t}
}

// EveryDay triggers daily at hour:minute.
func EveryDay(hour, minute int) Trigger {
	return Trigger{Daily: true, Hour: hour, Minute: minute}
}

// Payload travels with the notification and is handed to the tap
// handler. Type carries the category tag; TargetScreen is where a tap
// navigates; EntryID is set for schedule notifications only.
type Payload struct {
	Type         Category `json:"type"`
	TargetScreen string   `json:"targetScreen"`
	EntryID      string   `json:"entryId,omitempty"`
}

// Record is one local notification as known to the device queue.
// Identity is the ID: scheduling a record with an id already pending
// replaces the previous one.
type Record struct {
	ID      int
	Title   string
	Body    string
	Trigger Trigger
	Payload Payload
}
