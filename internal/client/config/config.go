// Package config loads runtime settings for the reComenzar CLI.
//
// Values are layered: built-in defaults, then an optional JSON file
// (-c/-config), then RECOMENZAR_* environment variables, then
// command-line flags. Later sources take precedence.
package config

import "time"

// Config holds every tunable of the client.
//
// Deadlines and reminder hours are wall-clock "HH:MM" strings; they are
// validated where they are consumed so a bad value degrades rather than
// aborts startup.
type Config struct {
	// APIBaseURL is the backend REST endpoint, e.g. "https://api.recomenzar.app/v1".
	APIBaseURL string

	// RequestTimeout applies uniformly to every outbound request.
	RequestTimeout time.Duration

	// DatabasePath locates the local preferences database.
	DatabasePath string

	// ReportDeadline is the daily report submission limit.
	ReportDeadline string

	// ScheduleDeadline is the limit for registering tomorrow's schedule.
	ScheduleDeadline string

	// ChallengeReset is the hour at which daily challenge state resets.
	ChallengeReset string

	// ReminderHours are the daily reminder notification times, in slot order.
	ReminderHours []string

	// ReminderMessages holds one message per reminder slot. Slots beyond
	// the list fall back to the first message.
	ReminderMessages []string
}

// LoadDefaults populates c with the stock configuration.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "recomenzar.db"
	c.ReportDeadline = "23:00"
	c.ScheduleDeadline = "23:59"
	c.ChallengeReset = "08:00"
	c.ReminderHours = []string{"09:00", "15:00", "21:00"}
	c.ReminderMessages = []string{
		"¡Buenos días! Recuerda registrar tu estado de ánimo.",
		"¿Cómo va tu día? No olvides tu reporte.",
		"Se acerca el límite. ¿Ya registraste tu reporte?",
	}
}

// ReminderMessage returns the message for a reminder slot, falling back
// to slot 0 when the slot has no message of its own.
func (c *Config) ReminderMessage(slot int) string {
	if slot >= 0 && slot < len(c.ReminderMessages) && c.ReminderMessages[slot] != "" {
		return c.ReminderMessages[slot]
	}
	if len(c.ReminderMessages) > 0 {
		return c.ReminderMessages[0]
	}
	return ""
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment, and flag values in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
