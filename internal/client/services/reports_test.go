package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/logging"
)

type fakeReportAPI struct {
	today   *models.DailyReport
	created models.CreateReportRequest
	err     error
}

func (f *fakeReportAPI) Today(_ context.Context) (*models.DailyReport, error) {
	return f.today, f.err
}

func (f *fakeReportAPI) Latest(_ context.Context) (*models.DailyReport, error) {
	return f.today, f.err
}

func (f *fakeReportAPI) Create(_ context.Context, req models.CreateReportRequest) (*models.DailyReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &models.DailyReport{ID: "r1", Fecha: req.Fecha, EstadoAnimo: req.EstadoAnimo}, nil
}

func (f *fakeReportAPI) List(_ context.Context, _ models.ReportFilters, page, limit int) (*models.PaginatedReports, error) {
	return &models.PaginatedReports{Page: page, Limit: limit}, f.err
}

type fakeCanceller struct {
	calls int
	err   error
}

func (f *fakeCanceller) CancelTodayReminders(_ context.Context) error {
	f.calls++
	return f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReportCreate_StampsTodayAndCancelsReminders(t *testing.T) {
	api := &fakeReportAPI{}
	canceller := &fakeCanceller{}
	svc := NewReportService(api, canceller, testLogger()).(*reportService)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 5, 21, 30, 0, 0, time.Local)
	}

	report, err := svc.Create(context.Background(), models.CreateReportRequest{EstadoAnimo: models.MoodGood})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-05", report.Fecha)
	assert.Equal(t, "2026-03-05", api.created.Fecha)
	assert.Equal(t, 1, canceller.calls)
}

func TestReportCreate_CancellationFailureDoesNotFailSubmission(t *testing.T) {
	api := &fakeReportAPI{}
	canceller := &fakeCanceller{err: errors.New("queue down")}
	svc := NewReportService(api, canceller, testLogger())

	report, err := svc.Create(context.Background(), models.CreateReportRequest{EstadoAnimo: models.MoodNeutral})
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestReportCreate_APIErrorSkipsCancellation(t *testing.T) {
	api := &fakeReportAPI{err: errors.New("boom")}
	canceller := &fakeCanceller{}
	svc := NewReportService(api, canceller, testLogger())

	_, err := svc.Create(context.Background(), models.CreateReportRequest{})
	require.Error(t, err)
	assert.Zero(t, canceller.calls)
}

func TestFetchToday_NilMeansNotSubmitted(t *testing.T) {
	svc := NewReportService(&fakeReportAPI{}, &fakeCanceller{}, testLogger())

	report, err := svc.FetchToday(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report)
}
