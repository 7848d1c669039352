package models

// MoodLevel is the self-reported mood on a 1 (worst) to 5 (best) scale.
type MoodLevel int

const (
	MoodVeryBad  MoodLevel = 1
	MoodBad      MoodLevel = 2
	MoodNeutral  MoodLevel = 3
	MoodGood     MoodLevel = 4
	MoodVeryGood MoodLevel = 5
)

// Valid reports whether m is within the 1..5 scale.
func (m MoodLevel) Valid() bool {
	return m >= MoodVeryBad && m <= MoodVeryGood
}

// DailyReport is one day's accountability report.
type DailyReport struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Fecha              string          `json:"fecha"`
	EstadoAnimo        MoodLevel       `json:"estadoAnimo"`
	HorarioCumplido    bool            `json:"horarioCumplido"`
	LlamadasRealizadas bool            `json:"llamadasRealizadas"`
	RetosCumplidos     map[string]bool `json:"retosCumplidos"`
	ReporteEscrito     string          `json:"reporteEscrito"`
	Presentado         bool            `json:"presentado"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// CreateReportRequest is the submission payload. Fecha is stamped by the
// service with today's date.
type CreateReportRequest struct {
	Fecha              string          `json:"fecha,omitempty"`
	EstadoAnimo        MoodLevel       `json:"estadoAnimo"`
	HorarioCumplido    bool            `json:"horarioCumplido"`
	LlamadasRealizadas bool            `json:"llamadasRealizadas"`
	RetosCumplidos     map[string]bool `json:"retosCumplidos"`
	ReporteEscrito     string          `json:"reporteEscrito"`
}

// ReportFilters narrows paginated report queries. Zero values mean
// "no filter"; the boolean filters use pointers to distinguish false
// from unset.
type ReportFilters struct {
	FechaDesde         string
	FechaHasta         string
	EstadoAnimo        []MoodLevel
	HorarioCumplido    *bool
	LlamadasRealizadas *bool
	RetosCumplidos     *bool
	Presentado         *bool
}

// PaginatedReports is one page of report history.
type PaginatedReports struct {
	Data       []DailyReport `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}
