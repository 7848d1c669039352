package models

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the new-account form.
type RegisterRequest struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Email           string `json:"email"`
	Password        string `json:"password"`
}

// AuthResponse is returned by login, register, and refresh.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}
