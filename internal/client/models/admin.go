package models

// AdminCreateUserRequest creates an account on behalf of a user.
type AdminCreateUserRequest struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role,omitempty"`
}

// AdminUpdateUserRequest edits an account.
type AdminUpdateUserRequest struct {
	Nombre          string `json:"nombre,omitempty"`
	Apellidos       string `json:"apellidos,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
	Role            string `json:"role,omitempty"`
}

// DashboardEntry is one row of the admin status overview: a user and
// whether today's report and tomorrow's schedule are in.
type DashboardEntry struct {
	User               User `json:"user"`
	ReportPresented    bool `json:"reportPresented"`
	ScheduleRegistered bool `json:"scheduleRegistered"`
}
