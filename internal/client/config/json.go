package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pablomagana/recomenzar/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The request
// timeout is given in seconds.
type jsonConfig struct {
	APIBaseURL        string   `json:"api_base_url"`
	RequestTimeoutSec int      `json:"request_timeout_sec"`
	DatabasePath      string   `json:"database_path"`
	ReportDeadline    string   `json:"report_deadline"`
	ScheduleDeadline  string   `json:"schedule_deadline"`
	ChallengeReset    string   `json:"challenge_reset"`
	ReminderHours     string   `json:"reminder_hours"`
	ReminderMessages  []string `json:"reminder_messages"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Missing flag means no JSON is loaded. Read or unmarshal errors panic,
// matching the fail-fast startup of the rest of the loader.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ReportDeadline != "" {
		cfg.ReportDeadline = jc.ReportDeadline
	}
	if jc.ScheduleDeadline != "" {
		cfg.ScheduleDeadline = jc.ScheduleDeadline
	}
	if jc.ChallengeReset != "" {
		cfg.ChallengeReset = jc.ChallengeReset
	}
	if jc.ReminderHours != "" {
		cfg.ReminderHours = splitHours(jc.ReminderHours)
	}
	if len(jc.ReminderMessages) > 0 {
		cfg.ReminderMessages = jc.ReminderMessages
	}
}

// splitHours parses a comma-separated "HH:MM,HH:MM" list, trimming
// whitespace and dropping empty items.
func splitHours(s string) []string {
	parts := strings.Split(s, ",")
	hours := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			hours = append(hours, p)
		}
	}
	return hours
}
