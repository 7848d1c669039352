package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// TapHandler reacts to a delivered notification, typically by
// navigating to the payload's target screen.
type TapHandler func(rec Record)

// LocalQueue is the in-process notification queue. Recurring records
// run on a cron schedule, one-shots on a timer. A delivered one-shot
// leaves the queue; a recurring record stays pending until cancelled.
type LocalQueue struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[int]*localEntry
	onTap   TapHandler
}

type localEntry struct {
	record Record
	cronID cron.EntryID
	timer  *time.Timer
}

// NewLocalQueue builds a queue delivering to onTap. The caller owns the
// lifecycle: Start before scheduling, Stop when done.
func NewLocalQueue(onTap TapHandler) *LocalQueue {
	if onTap == nil {
		onTap = func(Record) {}
	}
	return &LocalQueue{
		cron:    cron.New(),
		entries: make(map[int]*localEntry),
		onTap:   onTap,
	}
}

// Start begins firing triggers.
func (q *LocalQueue) Start() {
	q.cron.Start()
}

// Stop stops firing triggers. Pending records are kept.
func (q *LocalQueue) Stop() {
	q.cron.Stop()
}

// PermissionGranted implements PermissionChecker. An in-process queue
// needs no user consent.
func (q *LocalQueue) PermissionGranted(context.Context) bool {
	return true
}

// Pending implements Queue.
func (q *LocalQueue) Pending(context.Context) ([]Record, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Record, 0, len(q.entries))
	for _, e := range q.entries {
		out = append(out, e.record)
	}
	return out, nil
}

// Schedule implements Queue. A record reusing a pending id replaces the
// previous one.
func (q *LocalQueue) Schedule(_ context.Context, records []Record) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, rec := range records {
		q.removeLocked(rec.ID)

		e := &localEntry{record: rec}
		if rec.Trigger.Daily {
			spec := fmt.Sprintf("%d %d * * *", rec.Trigger.Minute, rec.Trigger.Hour)
			id, err := q.cron.AddFunc(spec, q.fire(rec.ID, false))
			if err != nil {
				return fmt.Errorf("failed to schedule recurring notification %d: %w", rec.ID, err)
			}
			e.cronID = id
		} else {
			e.timer = time.AfterFunc(time.Until(rec.Trigger.At), q.fire(rec.ID, true))
		}
		q.entries[rec.ID] = e
	}
	return nil
}

// Cancel implements Queue.
func (q *LocalQueue) Cancel(_ context.Context, ids []int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, id := range ids {
		q.removeLocked(id)
	}
	return nil
}

func (q *LocalQueue) fire(id int, oneShot bool) func() {
	return func() {
		q.mu.Lock()
		e, ok := q.entries[id]
		if ok && oneShot {
			delete(q.entries, id)
		}
		q.mu.Unlock()

		if ok {
			q.onTap(e.record)
		}
	}
}

func (q *LocalQueue) removeLocked(id int) {
	e, ok := q.entries[id]
	if !ok {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	if e.record.Trigger.Daily {
		q.cron.Remove(e.cronID)
	}
	delete(q.entries, id)
}
