package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/logging"
	"github.com/pablomagana/recomenzar/internal/timex"
)

// ReportAPI is the slice of the reports endpoint client the service needs.
type ReportAPI interface {
	Today(ctx context.Context) (*models.DailyReport, error)
	Latest(ctx context.Context) (*models.DailyReport, error)
	Create(ctx context.Context, req models.CreateReportRequest) (*models.DailyReport, error)
	List(ctx context.Context, filters models.ReportFilters, page, limit int) (*models.PaginatedReports, error)
}

// ReminderCanceller silences the remaining reminder notifications once
// a report has been submitted.
type ReminderCanceller interface {
	CancelTodayReminders(ctx context.Context) error
}

// ReportService defines the daily report operations of the CLI.
//
// Contract:
//   - FetchToday / FetchLatest: nil report means "none exists".
//   - Create: stamps today's date, submits, then cancels today's reminders.
//   - List: paginated history with optional filters.
type ReportService interface {
	FetchToday(ctx context.Context) (*models.DailyReport, error)
	FetchLatest(ctx context.Context) (*models.DailyReport, error)
	Create(ctx context.Context, req models.CreateReportRequest) (*models.DailyReport, error)
	List(ctx context.Context, filters models.ReportFilters, page, limit int) (*models.PaginatedReports, error)
}

type reportService struct {
	api       ReportAPI
	reminders ReminderCanceller
	log       logging.Logger

	now func() time.Time // test seam
}

func NewReportService(api ReportAPI, reminders ReminderCanceller, log logging.Logger) ReportService {
	return &reportService{
		api:       api,
		reminders: reminders,
		log:       log.With("service", "reports"),
		now:       time.Now,
	}
}

func (s *reportService) FetchToday(ctx context.Context) (*models.DailyReport, error) {
	return s.api.Today(ctx)
}

func (s *reportService) FetchLatest(ctx context.Context) (*models.DailyReport, error) {
	return s.api.Latest(ctx)
}

// Create stamps today's date on the request and submits it. Once the
// report exists there is nothing left to remind about today, so the
// pending reminder notifications are cancelled; a cancellation failure
// is logged but never fails the submission.
func (s *reportService) Create(ctx context.Context, req models.CreateReportRequest) (*models.DailyReport, error) {
	req.Fecha = timex.FormatISODate(s.now())

	report, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}

	if err := s.reminders.CancelTodayReminders(ctx); err != nil {
		s.log.Warn(ctx, "failed to cancel today's reminders", "error", err)
	}
	return report, nil
}

func (s *reportService) List(ctx context.Context, filters models.ReportFilters, page, limit int) (*models.PaginatedReports, error) {
	return s.api.List(ctx, filters, page, limit)
}
