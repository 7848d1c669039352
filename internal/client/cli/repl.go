package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Report(ctx context.Context) error
	Today(ctx context.Context) error
	History(ctx context.Context) error
	Schedule(ctx context.Context) error
	Challenges(ctx context.Context) error
	Profile(ctx context.Context) error
	Alerts(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the interactive loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: report, today, (h)istory, schedule, challenges, profile, alerts, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "report":
			_ = a.Report(ctx)

		case "today":
			_ = a.Today(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "schedule":
			_ = a.Schedule(ctx)

		case "challenges":
			_ = a.Challenges(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "alerts":
			_ = a.Alerts(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("¡Hasta mañana!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
