package api

import (
	"context"
	"errors"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// SchedulesClient wraps the /schedules endpoints.
type SchedulesClient struct {
	g *Gateway
}

func NewSchedulesClient(g *Gateway) *SchedulesClient {
	return &SchedulesClient{g: g}
}

// Tomorrow fetches the schedule registered for tomorrow, nil when none
// has been registered yet.
func (c *SchedulesClient) Tomorrow(ctx context.Context) (*models.DailySchedule, error) {
	var schedule models.DailySchedule
	err := c.g.get(ctx, "/schedules/tomorrow", nil, &schedule)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create registers a schedule.
func (c *SchedulesClient) Create(ctx context.Context, req models.CreateScheduleRequest) (*models.DailySchedule, error) {
	var schedule models.DailySchedule
	if err := c.g.post(ctx, "/schedules", req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateCorrections amends entries of an existing schedule.
func (c *SchedulesClient) UpdateCorrections(ctx context.Context, scheduleID string, corrections []models.ScheduleCorrection) (*models.DailySchedule, error) {
	body := map[string]any{"corrections": corrections}

	var schedule models.DailySchedule
	if err := c.g.put(ctx, "/schedules/"+scheduleID+"/corrections", body, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}
