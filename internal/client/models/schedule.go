package models

// ScheduleEntry is a single planned activity: an "HH:MM" wall-clock time
// and a free-form action. Corrections are filled in by the user the day
// after, when reviewing what actually happened.
type ScheduleEntry struct {
	ID               string `json:"id"`
	Hora             string `json:"hora"`
	Accion           string `json:"accion"`
	HoraCorreccion   string `json:"horaCorreccion,omitempty"`
	AccionCorreccion string `json:"accionCorreccion,omitempty"`
}

// DailySchedule is the set of activities registered for one calendar day.
type DailySchedule struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Fecha          string          `json:"fecha"`
	RegistradoPara string          `json:"registradoPara"`
	Entries        []ScheduleEntry `json:"entries"`
	Registrado     bool            `json:"registrado"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

// DraftEntry is an entry being composed locally, before the backend
// assigns ids.
type DraftEntry struct {
	Hora   string `json:"hora"`
	Accion string `json:"accion"`
}

// CreateScheduleRequest registers a schedule for the given date. The
// backend takes the target date as "fecha" on creation; "registradoPara"
// appears only on the returned DailySchedule.
type CreateScheduleRequest struct {
	Fecha   string       `json:"fecha"`
	Entries []DraftEntry `json:"entries"`
}

// ScheduleCorrection amends one entry after the fact. Nil fields are
// left untouched by the backend.
type ScheduleCorrection struct {
	EntryID          string  `json:"entryId"`
	HoraCorreccion   *string `json:"horaCorreccion"`
	AccionCorreccion *string `json:"accionCorreccion"`
}
