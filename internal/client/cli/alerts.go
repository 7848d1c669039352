package cli

import (
	"context"
	"fmt"
	"os"
)

// Alerts shows whether today's admin alert has been read and toggles the
// marker. The marker is local: the backend never sees it.
func (a *App) Alerts(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Println("Inicia sesión primero")
		return nil
	}

	read, err := a.alerts.ReadToday(ctx, user.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}

	if read {
		fmt.Println("La alerta de hoy ya está marcada como leída")
	} else {
		fmt.Println("Tienes la alerta de hoy sin leer")
	}

	toggle, err := GetYesNo(a.reader, "¿Cambiar el estado?", os.Stdout)
	if err != nil {
		return err
	}
	if !toggle {
		return nil
	}

	if read {
		err = a.alerts.MarkUnread(ctx, user.ID)
	} else {
		err = a.alerts.MarkRead(ctx, user.ID)
	}
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}

	fmt.Println("Hecho")
	return nil
}
