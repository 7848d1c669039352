package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
	"github.com/pablomagana/recomenzar/internal/logging"
	"github.com/pablomagana/recomenzar/internal/timex"
)

// ScheduleAPI is the slice of the schedules endpoint client the service needs.
type ScheduleAPI interface {
	Tomorrow(ctx context.Context) (*models.DailySchedule, error)
	Create(ctx context.Context, req models.CreateScheduleRequest) (*models.DailySchedule, error)
	UpdateCorrections(ctx context.Context, scheduleID string, corrections []models.ScheduleCorrection) (*models.DailySchedule, error)
}

// ScheduleReconciler replaces the pending schedule notifications after a
// schedule mutation.
type ScheduleReconciler interface {
	ReconcileSchedule(ctx context.Context, schedule *models.DailySchedule) error
}

// ScheduleService defines the daily schedule operations of the CLI.
//
// Contract:
//   - FetchTomorrow: nil schedule means "not registered yet".
//   - Create: drops blank drafts, rejects an empty result with
//     common.ErrEmptySchedule, registers for tomorrow, then reconciles
//     the schedule notifications.
//   - UpdateCorrections: amends entries after the fact.
type ScheduleService interface {
	FetchTomorrow(ctx context.Context) (*models.DailySchedule, error)
	Create(ctx context.Context, drafts []models.DraftEntry) (*models.DailySchedule, error)
	UpdateCorrections(ctx context.Context, scheduleID string, corrections []models.ScheduleCorrection) (*models.DailySchedule, error)
}

type scheduleService struct {
	api    ScheduleAPI
	notify ScheduleReconciler
	log    logging.Logger

	now func() time.Time // test seam
}

func NewScheduleService(api ScheduleAPI, notify ScheduleReconciler, log logging.Logger) ScheduleService {
	return &scheduleService{
		api:    api,
		notify: notify,
		log:    log.With("service", "schedule"),
		now:    time.Now,
	}
}

func (s *scheduleService) FetchTomorrow(ctx context.Context) (*models.DailySchedule, error) {
	return s.api.Tomorrow(ctx)
}

// Create filters out drafts with a blank hora or accion and registers
// the rest for tomorrow, submitting the accion trimmed. A notification
// reconciliation failure is logged but never fails the registration.
func (s *scheduleService) Create(ctx context.Context, drafts []models.DraftEntry) (*models.DailySchedule, error) {
	entries := make([]models.DraftEntry, 0, len(drafts))
	for _, d := range drafts {
		accion := strings.TrimSpace(d.Accion)
		if strings.TrimSpace(d.Hora) == "" || accion == "" {
			continue
		}
		entries = append(entries, models.DraftEntry{Hora: d.Hora, Accion: accion})
	}
	if len(entries) == 0 {
		return nil, common.ErrEmptySchedule
	}

	req := models.CreateScheduleRequest{
		Fecha:   timex.FormatISODate(timex.Tomorrow(s.now())),
		Entries: entries,
	}
	schedule, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to register schedule: %w", err)
	}

	if err := s.notify.ReconcileSchedule(ctx, schedule); err != nil {
		s.log.Warn(ctx, "failed to reconcile schedule notifications", "error", err)
	}
	return schedule, nil
}

func (s *scheduleService) UpdateCorrections(ctx context.Context, scheduleID string, corrections []models.ScheduleCorrection) (*models.DailySchedule, error) {
	return s.api.UpdateCorrections(ctx, scheduleID, corrections)
}
