package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names. Reminder messages map one per slot, the
// same way the mobile app reads its build-time variables.
const (
	envAPIBaseURL       = "RECOMENZAR_API_BASE_URL"
	envRequestTimeout   = "RECOMENZAR_REQUEST_TIMEOUT_SEC"
	envDatabasePath     = "RECOMENZAR_DB_PATH"
	envReportDeadline   = "RECOMENZAR_HORA_LIMITE_REPORTE"
	envScheduleDeadline = "RECOMENZAR_HORA_LIMITE_HORARIO"
	envChallengeReset   = "RECOMENZAR_HORA_REINICIO_RETOS"
	envReminderHours    = "RECOMENZAR_NOTIF_HORAS"
	envMessageMorning   = "RECOMENZAR_NOTIF_MENSAJE_MANANA"
	envMessageAfternoon = "RECOMENZAR_NOTIF_MENSAJE_TARDE"
	envMessageEvening   = "RECOMENZAR_NOTIF_MENSAJE_NOCHE"
)

// parseEnv overlays cfg with RECOMENZAR_* environment variables.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.RequestTimeout = time.Duration(sec) * time.Second
		}
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envReportDeadline); v != "" {
		cfg.ReportDeadline = v
	}
	if v := os.Getenv(envScheduleDeadline); v != "" {
		cfg.ScheduleDeadline = v
	}
	if v := os.Getenv(envChallengeReset); v != "" {
		cfg.ChallengeReset = v
	}
	if v := os.Getenv(envReminderHours); v != "" {
		cfg.ReminderHours = splitHours(v)
	}

	msgs := [...]string{
		os.Getenv(envMessageMorning),
		os.Getenv(envMessageAfternoon),
		os.Getenv(envMessageEvening),
	}
	for i, m := range msgs {
		if m == "" {
			continue
		}
		for len(cfg.ReminderMessages) <= i {
			cfg.ReminderMessages = append(cfg.ReminderMessages, "")
		}
		cfg.ReminderMessages[i] = m
	}
}
