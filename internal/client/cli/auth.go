package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// is persisted and the daily reminders are scheduled by the session's
// notifier; an error is printed and nil returned so the loop continues.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Contraseña")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := a.session.Login(ctx, req); err != nil {
		fmt.Println("Login fallido:", err)
		return nil
	}

	fmt.Printf("Hola, %s\n", a.session.User().Nombre)
	return nil
}

// Register prompts for the new-account form and creates the account. The
// backend logs the user in as part of registration.
func (a *App) Register(ctx context.Context) error {
	nombre, err := getSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}
	apellidos, err := getSimpleText(a.reader, "Apellidos", os.Stdout)
	if err != nil {
		return err
	}
	fechaNacimiento, err := getSimpleText(a.reader, "Fecha de nacimiento (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Contraseña")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{
		Nombre:          nombre,
		Apellidos:       apellidos,
		FechaNacimiento: fechaNacimiento,
		Email:           email,
		Password:        string(password),
	}
	if err := a.session.Register(ctx, req); err != nil {
		fmt.Println("Registro fallido:", err)
		return nil
	}

	fmt.Println("¡Cuenta creada!")
	return nil
}

// Logout revokes the session server-side when possible and always clears
// the local session and pending notifications.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout:", err)
		return nil
	}
	fmt.Println("Sesión cerrada")
	return nil
}
