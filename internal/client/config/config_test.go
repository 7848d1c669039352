package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "23:00", cfg.ReportDeadline)
	assert.Equal(t, "23:59", cfg.ScheduleDeadline)
	assert.Equal(t, "08:00", cfg.ChallengeReset)
	assert.Equal(t, []string{"09:00", "15:00", "21:00"}, cfg.ReminderHours)
	require.Len(t, cfg.ReminderMessages, 3)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv(envReportDeadline, "22:30")
	t.Setenv(envReminderHours, "08:00, 20:00")
	t.Setenv(envMessageAfternoon, "Hora del reporte")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "22:30", cfg.ReportDeadline)
	assert.Equal(t, []string{"08:00", "20:00"}, cfg.ReminderHours)
	assert.Equal(t, "Hora del reporte", cfg.ReminderMessages[1])
	// untouched slots keep their defaults
	assert.Equal(t, "¡Buenos días! Recuerda registrar tu estado de ánimo.", cfg.ReminderMessages[0])
}

func TestReminderMessage_FallsBackToSlotZero(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.ReminderHours = []string{"09:00", "12:00", "15:00", "18:00", "21:00"}

	assert.Equal(t, cfg.ReminderMessages[1], cfg.ReminderMessage(1))
	assert.Equal(t, cfg.ReminderMessages[0], cfg.ReminderMessage(3))
	assert.Equal(t, cfg.ReminderMessages[0], cfg.ReminderMessage(-1))
}

func TestSplitHours(t *testing.T) {
	assert.Equal(t, []string{"09:00", "15:00"}, splitHours("09:00,15:00"))
	assert.Equal(t, []string{"09:00"}, splitHours(" 09:00 , "))
	assert.Empty(t, splitHours(""))
}
