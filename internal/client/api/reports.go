package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// ReportsClient wraps the /reports endpoints.
type ReportsClient struct {
	g *Gateway
}

func NewReportsClient(g *Gateway) *ReportsClient {
	return &ReportsClient{g: g}
}

// Today fetches today's report. A 404 means "not submitted yet" and
// returns (nil, nil).
func (c *ReportsClient) Today(ctx context.Context) (*models.DailyReport, error) {
	return c.maybeReport(ctx, "/reports/today")
}

// Latest fetches the most recent report, nil when the user has none.
func (c *ReportsClient) Latest(ctx context.Context) (*models.DailyReport, error) {
	return c.maybeReport(ctx, "/reports/latest")
}

func (c *ReportsClient) maybeReport(ctx context.Context, path string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := c.g.get(ctx, path, nil, &report)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Create submits a report.
func (c *ReportsClient) Create(ctx context.Context, req models.CreateReportRequest) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := c.g.post(ctx, "/reports", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// List fetches a page of report history.
func (c *ReportsClient) List(ctx context.Context, filters models.ReportFilters, page, limit int) (*models.PaginatedReports, error) {
	query := url.Values{}

	if filters.FechaDesde != "" {
		query.Set("fechaDesde", filters.FechaDesde)
	}
	if filters.FechaHasta != "" {
		query.Set("fechaHasta", filters.FechaHasta)
	}
	if len(filters.EstadoAnimo) > 0 {
		levels := make([]string, len(filters.EstadoAnimo))
		for i, l := range filters.EstadoAnimo {
			levels[i] = strconv.Itoa(int(l))
		}
		query.Set("estadoAnimo", strings.Join(levels, ","))
	}
	setBool(query, "horarioCumplido", filters.HorarioCumplido)
	setBool(query, "llamadasRealizadas", filters.LlamadasRealizadas)
	setBool(query, "retosCumplidos", filters.RetosCumplidos)
	setBool(query, "presentado", filters.Presentado)

	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result models.PaginatedReports
	if err := c.g.get(ctx, "/reports", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func setBool(query url.Values, key string, v *bool) {
	if v != nil {
		query.Set(key, strconv.FormatBool(*v))
	}
}
