package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.FullName())
}

// Root runs the interactive loop until EOF or exit. A restored session
// skips the login prompt.
func (a *App) Root(ctx context.Context) {
	printlnFn("Bienvenido a reComenzar (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, scanner)
}
