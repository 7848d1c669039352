package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/pablomagana/recomenzar/internal/client/config"
	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
	"github.com/pablomagana/recomenzar/internal/logging"
	"github.com/pablomagana/recomenzar/internal/timex"
)

// Scheduler reconciles the device queue with business state, one
// category at a time. All operations are no-ops until Initialize has
// run and found the notification permission granted; scheduling
// failures are not retried here, because every reconciliation is
// naturally re-run by the next triggering event (login, report
// submission, schedule registration).
type Scheduler struct {
	queue Queue
	cfg   *config.Config
	log   logging.Logger

	now func() time.Time // test seam

	enabled bool
}

func NewScheduler(queue Queue, cfg *config.Config, log logging.Logger) *Scheduler {
	return &Scheduler{
		queue: queue,
		cfg:   cfg,
		log:   log.With("component", "notify"),
		now:   time.Now,
	}
}

// Initialize decides the permission gate (checked once, system-wide)
// and performs the first reminder reconciliation when granted. A denied
// permission returns common.ErrPermissionDenied and leaves every later
// scheduling call a silent no-op.
func (s *Scheduler) Initialize(ctx context.Context) error {
	s.enabled = true
	if pc, ok := s.queue.(PermissionChecker); ok && !pc.PermissionGranted(ctx) {
		s.enabled = false
		return common.ErrPermissionDenied
	}
	if err := s.ReconcileReminders(ctx); err != nil {
		s.log.Error(ctx, "reminder reconciliation failed", "error", err)
	}
	return nil
}

// Setup implements session.Notifier. A refused permission degrades to
// no scheduling, never a failed login.
func (s *Scheduler) Setup(ctx context.Context) {
	if err := s.Initialize(ctx); err != nil {
		s.log.Warn(ctx, "notification scheduling disabled", "error", err)
	}
}

// Teardown implements session.Notifier: on logout every reminder and
// schedule notification is cancelled.
func (s *Scheduler) Teardown(ctx context.Context) {
	for _, cat := range []Category{CategoryReminder, CategorySchedule} {
		if err := s.CancelCategory(ctx, cat); err != nil {
			s.log.Error(ctx, "failed to cancel notifications", "category", cat, "error", err)
		}
	}
}

// ReconcileReminders replaces all pending reminder notifications with
// one recurring daily notification per configured reminder hour.
// Malformed hours are skipped. Slot order defines the notification id.
func (s *Scheduler) ReconcileReminders(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	if err := s.CancelCategory(ctx, CategoryReminder); err != nil {
		return err
	}

	records := make([]Record, 0, len(s.cfg.ReminderHours))
	for slot, hour := range s.cfg.ReminderHours {
		c, err := timex.ParseClock(hour)
		if err != nil {
			s.log.Warn(ctx, "skipping malformed reminder hour", "hour", hour)
			continue
		}
		records = append(records, Record{
			ID:      ReminderID(slot),
			Title:   "reComenzar",
			Body:    s.cfg.ReminderMessage(slot),
			Trigger: EveryDay(c.Hour, c.Minute),
			Payload: Payload{Type: CategoryReminder, TargetScreen: ScreenReports},
		})
	}

	if len(records) == 0 {
		return nil
	}
	return s.queue.Schedule(ctx, records)
}

// ReconcileSchedule replaces all pending schedule notifications with one
// one-shot notification per entry whose trigger instant (the schedule's
// date plus the entry's hora) is still strictly in the future. Entries
// already past are skipped, never scheduled late.
func (s *Scheduler) ReconcileSchedule(ctx context.Context, schedule *models.DailySchedule) error {
	if !s.enabled || schedule == nil {
		return nil
	}

	if err := s.CancelCategory(ctx, CategorySchedule); err != nil {
		return err
	}

	day, err := timex.ParseISODate(schedule.Fecha)
	if err != nil {
		return fmt.Errorf("schedule has invalid date %q: %w", schedule.Fecha, err)
	}

	now := s.now()
	records := make([]Record, 0, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		c, err := timex.ParseClock(entry.Hora)
		if err != nil {
			s.log.Warn(ctx, "skipping entry with malformed hora", "entry", entry.ID, "hora", entry.Hora)
			continue
		}
		at := c.At(day)
		if !at.After(now) {
			continue
		}
		records = append(records, Record{
			ID:      ScheduleID(entry.ID),
			Title:   "⏰ Es hora de: " + entry.Accion,
			Body:    "Actividad programada para las " + entry.Hora,
			Trigger: OneShot(at),
			Payload: Payload{Type: CategorySchedule, TargetScreen: ScreenSchedule, EntryID: entry.ID},
		})
	}

	if len(records) == 0 {
		return nil
	}
	return s.queue.Schedule(ctx, records)
}

// CancelTodayReminders removes every pending reminder notification for
// the rest of the day. The next app-level reconciliation (typically the
// next login) restores them.
func (s *Scheduler) CancelTodayReminders(ctx context.Context) error {
	if !s.enabled {
		return nil
	}
	return s.CancelCategory(ctx, CategoryReminder)
}

// CancelCategory cancels exactly the pending notifications tagged with
// the category. Filtering is by payload tag, not id range: the id block
// is derived from the tag, not the other way round.
func (s *Scheduler) CancelCategory(ctx context.Context, cat Category) error {
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending notifications: %w", err)
	}

	var ids []int
	for _, rec := range pending {
		if rec.Payload.Type == cat {
			ids = append(ids, rec.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return s.queue.Cancel(ctx, ids)
}
