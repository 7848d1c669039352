package models

// User is the authenticated user's profile.
type User struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fechaNacimiento"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	Role            string `json:"role,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FullName joins first and last names for display.
func (u User) FullName() string {
	if u.Apellidos == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellidos
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Nombre          string `json:"nombre,omitempty"`
	Apellidos       string `json:"apellidos,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
}

// ChangePasswordRequest carries a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
