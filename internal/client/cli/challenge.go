package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// Challenges lists the weekly challenges and offers to add or remove one.
func (a *App) Challenges(ctx context.Context) error {
	challenges, err := a.challenges.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}

	if len(challenges) == 0 {
		fmt.Println("Sin retos esta semana")
	}
	for i, c := range challenges {
		fmt.Printf("  %d. %s\n", i+1, c.Nombre)
	}
	fmt.Printf("(%d de %d retos, se reinician a las %s)\n", len(challenges), models.MaxChallenges, a.config.ChallengeReset)

	action, err := getSimpleText(a.reader, "añadir / borrar / volver", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "añadir", "anadir", "add":
		nombre, err := getSimpleText(a.reader, "Nombre del reto", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.challenges.Add(ctx, nombre); err != nil {
			if errors.Is(err, common.ErrChallengeLimit) {
				fmt.Printf("Ya tienes %d retos, borra uno primero\n", models.MaxChallenges)
				return nil
			}
			fmt.Println("Error:", err)
			return nil
		}
		fmt.Println("Reto añadido")

	case "borrar", "delete":
		answer, err := getSimpleText(a.reader, "Número del reto a borrar", os.Stdout)
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 || n > len(challenges) {
			fmt.Println("Número no válido")
			return nil
		}
		if err := a.challenges.Remove(ctx, challenges[n-1].ID); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		fmt.Println("Reto borrado")
	}
	return nil
}
