package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
	"github.com/pablomagana/recomenzar/internal/timex"
)

// defaultDraftHours pre-fills the draft with the usual structure of a
// day; the user fills in the actions and adds or skips slots.
var defaultDraftHours = []string{
	"07:00", "08:00", "09:00", "12:00", "14:00", "18:00", "20:00", "22:00",
}

// Schedule shows tomorrow's schedule if it is already registered, or
// walks the user through registering one. Past the configured deadline
// registration is refused.
func (a *App) Schedule(ctx context.Context) error {
	existing, err := a.schedule.FetchTomorrow(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	if existing != nil {
		fmt.Printf("Horario registrado para %s:\n", existing.Fecha)
		for i, e := range existing.Entries {
			fmt.Printf("  %d. %s  %s\n", i+1, e.Hora, e.Accion)
			if e.HoraCorreccion != "" || e.AccionCorreccion != "" {
				fmt.Printf("     corrección: %s %s\n", e.HoraCorreccion, e.AccionCorreccion)
			}
		}
		correct, err := GetYesNo(a.reader, "¿Corregir una entrada?", os.Stdout)
		if err != nil {
			return err
		}
		if correct {
			return a.correctEntry(ctx, existing)
		}
		return nil
	}

	now := a.now()
	if !timex.BeforeLimit(now, a.config.ScheduleDeadline) {
		fmt.Println("El límite para registrar el horario de mañana ya ha pasado")
		return nil
	}
	if warning := timex.ScheduleLimitWarning(now, a.config.ScheduleDeadline); warning != "" {
		fmt.Println("⚠️ ", warning)
	}

	fmt.Println("Registra tu horario para mañana (deja la acción vacía para saltar una hora)")
	drafts := make([]models.DraftEntry, 0, len(defaultDraftHours))
	for _, hora := range defaultDraftHours {
		accion, err := getSimpleText(a.reader, fmt.Sprintf("%s:", hora), os.Stdout)
		if err != nil {
			return err
		}
		drafts = append(drafts, models.DraftEntry{Hora: hora, Accion: accion})
	}

	for {
		more, err := GetYesNo(a.reader, "¿Añadir otra actividad?", os.Stdout)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		hora, err := getSimpleText(a.reader, "Hora (HH:MM)", os.Stdout)
		if err != nil {
			return err
		}
		accion, err := getSimpleText(a.reader, "Acción", os.Stdout)
		if err != nil {
			return err
		}
		drafts = append(drafts, models.DraftEntry{Hora: hora, Accion: accion})
	}

	schedule, err := a.schedule.Create(ctx, drafts)
	if err != nil {
		if errors.Is(err, common.ErrEmptySchedule) {
			fmt.Println("El horario necesita al menos una actividad")
			return nil
		}
		fmt.Println("Error al registrar el horario:", err)
		return nil
	}

	fmt.Printf("Horario de %s registrado con %d actividades\n", schedule.Fecha, len(schedule.Entries))
	return nil
}

// correctEntry records what actually happened for one entry. Empty
// answers leave the corresponding field untouched.
func (a *App) correctEntry(ctx context.Context, schedule *models.DailySchedule) error {
	n, err := GetIntInRange(a.reader, "Número de la entrada", 1, len(schedule.Entries), os.Stdout)
	if err != nil {
		return err
	}
	entry := schedule.Entries[n-1]

	hora, err := getSimpleText(a.reader, fmt.Sprintf("Hora real [%s]", entry.Hora), os.Stdout)
	if err != nil {
		return err
	}
	accion, err := getSimpleText(a.reader, fmt.Sprintf("Acción real [%s]", entry.Accion), os.Stdout)
	if err != nil {
		return err
	}

	correction := models.ScheduleCorrection{EntryID: entry.ID}
	if hora != "" {
		correction.HoraCorreccion = &hora
	}
	if accion != "" {
		correction.AccionCorreccion = &accion
	}
	if correction.HoraCorreccion == nil && correction.AccionCorreccion == nil {
		fmt.Println("Sin cambios")
		return nil
	}

	if _, err := a.schedule.UpdateCorrections(ctx, schedule.ID, []models.ScheduleCorrection{correction}); err != nil {
		fmt.Println("Error al guardar la corrección:", err)
		return nil
	}

	fmt.Println("Corrección guardada")
	return nil
}
