package cli

import (
	"context"
	"fmt"
	"os"
)

// Admin shows the daily dashboard and the user list. The backend rejects
// non-admin callers with ErrUnauthorized; no role check happens here.
func (a *App) Admin(ctx context.Context) error {
	action, err := getSimpleText(a.reader, "dashboard / usuarios / volver", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "dashboard":
		entries, err := a.admin.Dashboard(ctx)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if len(entries) == 0 {
			fmt.Println("Sin actividad hoy")
			return nil
		}
		for _, e := range entries {
			estado := "pendiente"
			if e.ReportPresented {
				estado = "presentado"
			}
			fmt.Printf("  %s  reporte: %s  horario: %s\n", e.User.FullName(), estado, yesNo(e.ScheduleRegistered))
		}

	case "usuarios", "users":
		users, err := a.admin.Users(ctx)
		if err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		for _, u := range users {
			fmt.Printf("  %s  %s  %s\n", u.ID, u.FullName(), u.Email)
		}
	}
	return nil
}
