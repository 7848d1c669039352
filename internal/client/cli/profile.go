package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// Profile shows the profile and offers to edit it or change the password.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.users.Profile(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}

	fmt.Printf("%s\n  Email: %s\n  Fecha de nacimiento: %s\n", user.FullName(), user.Email, user.FechaNacimiento)

	action, err := getSimpleText(a.reader, "editar / contraseña / volver", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "editar", "edit":
		return a.editProfile(ctx, user)
	case "contraseña", "contrasena", "password":
		return a.changePassword(ctx)
	}
	return nil
}

func (a *App) editProfile(ctx context.Context, current *models.User) error {
	fmt.Println("Deja un campo vacío para mantener el valor actual")

	nombre, err := getSimpleText(a.reader, fmt.Sprintf("Nombre [%s]", current.Nombre), os.Stdout)
	if err != nil {
		return err
	}
	apellidos, err := getSimpleText(a.reader, fmt.Sprintf("Apellidos [%s]", current.Apellidos), os.Stdout)
	if err != nil {
		return err
	}
	fechaNacimiento, err := getSimpleText(a.reader, fmt.Sprintf("Fecha de nacimiento [%s]", current.FechaNacimiento), os.Stdout)
	if err != nil {
		return err
	}

	req := models.UpdateProfileRequest{
		Nombre:          nombre,
		Apellidos:       apellidos,
		FechaNacimiento: fechaNacimiento,
	}
	if _, err := a.users.UpdateProfile(ctx, req); err != nil {
		fmt.Println("Error al actualizar el perfil:", err)
		return nil
	}

	fmt.Println("Perfil actualizado")
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Contraseña actual")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(os.Stdout, "Nueva contraseña")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	req := models.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	}
	if err := a.users.ChangePassword(ctx, req); err != nil {
		fmt.Println("Error al cambiar la contraseña:", err)
		return nil
	}

	fmt.Println("Contraseña cambiada")
	return nil
}
