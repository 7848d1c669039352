package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/timex"
)

var moodLabels = map[models.MoodLevel]string{
	models.MoodVeryBad:  "Muy mal",
	models.MoodBad:      "Mal",
	models.MoodNeutral:  "Regular",
	models.MoodGood:     "Bien",
	models.MoodVeryGood: "Muy bien",
}

// Report submits today's accountability report interactively. Past the
// configured deadline the submission is refused; close to it a countdown
// is shown first.
func (a *App) Report(ctx context.Context) error {
	now := a.now()
	if !timex.BeforeLimit(now, a.config.ReportDeadline) {
		fmt.Println("El límite para presentar el reporte de hoy ya ha pasado")
		return nil
	}
	if warning := timex.ReportLimitWarning(now, a.config.ReportDeadline); warning != "" {
		fmt.Println("⚠️ ", warning)
	}

	existing, err := a.reports.FetchToday(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	if existing != nil {
		fmt.Println("Ya has presentado el reporte de hoy")
		return nil
	}

	mood, err := GetIntInRange(a.reader, "¿Cómo te encuentras hoy?", 1, 5, os.Stdout)
	if err != nil {
		return err
	}
	horario, err := GetYesNo(a.reader, "¿Has cumplido tu horario?", os.Stdout)
	if err != nil {
		return err
	}
	llamadas, err := GetYesNo(a.reader, "¿Has realizado tus llamadas?", os.Stdout)
	if err != nil {
		return err
	}

	retos := map[string]bool{}
	challenges, err := a.challenges.List(ctx)
	if err != nil {
		fmt.Println("No se pudieron cargar los retos:", err)
	}
	for _, c := range challenges {
		done, err := GetYesNo(a.reader, fmt.Sprintf("¿Has cumplido el reto %q?", c.Nombre), os.Stdout)
		if err != nil {
			return err
		}
		retos[c.ID] = done
	}

	texto, err := GetMultiline(a.reader, "Escribe tu reporte del día", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateReportRequest{
		EstadoAnimo:        models.MoodLevel(mood),
		HorarioCumplido:    horario,
		LlamadasRealizadas: llamadas,
		RetosCumplidos:     retos,
		ReporteEscrito:     texto,
	}
	report, err := a.reports.Create(ctx, req)
	if err != nil {
		fmt.Println("Error al presentar el reporte:", err)
		return nil
	}

	fmt.Printf("Reporte de %s presentado. ¡Buen trabajo!\n", report.Fecha)
	return nil
}

// Today shows whether today's report has been submitted, and its content.
func (a *App) Today(ctx context.Context) error {
	report, err := a.reports.FetchToday(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	if report == nil {
		fmt.Println("Todavía no has presentado el reporte de hoy")
		if warning := timex.ReportLimitWarning(a.now(), a.config.ReportDeadline); warning != "" {
			fmt.Println("⚠️ ", warning)
		}
		return nil
	}

	printReport(*report)
	return nil
}

// History lists the most recent reports, newest first.
func (a *App) History(ctx context.Context) error {
	page, err := a.reports.List(ctx, models.ReportFilters{}, 1, 10)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	if len(page.Data) == 0 {
		fmt.Println("Sin reportes todavía")
		return nil
	}

	for _, r := range page.Data {
		fmt.Printf("%s  ánimo: %s  horario: %s  llamadas: %s\n",
			r.Fecha, moodLabels[r.EstadoAnimo], yesNo(r.HorarioCumplido), yesNo(r.LlamadasRealizadas))
	}
	fmt.Printf("Página %d de %d (%d reportes)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func printReport(r models.DailyReport) {
	fmt.Printf("Reporte de %s\n", r.Fecha)
	fmt.Printf("  Estado de ánimo: %s\n", moodLabels[r.EstadoAnimo])
	fmt.Printf("  Horario cumplido: %s\n", yesNo(r.HorarioCumplido))
	fmt.Printf("  Llamadas realizadas: %s\n", yesNo(r.LlamadasRealizadas))
	if r.ReporteEscrito != "" {
		fmt.Printf("  %s\n", r.ReporteEscrito)
	}
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}
