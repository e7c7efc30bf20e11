package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	XP(ctx context.Context) error
	Audit(ctx context.Context) error
	Grades(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the xpboard CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on context cancellation, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          sign in and load the profile
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - profile | p    reload and show the whole profile
//	  - xp             cumulative XP
//	  - audit          audit ratio
//	  - grades         best grade and XP per project
//	  - whoami         identity and expiry of the session
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Handlers print their own user-facing messages, so errors they return are
// ignored here. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("xp> %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (p)rofile, xp, audit, grades, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "profile":
			_ = a.Profile(ctx)

		case "xp":
			_ = a.XP(ctx)

		case "audit":
			_ = a.Audit(ctx)

		case "grades":
			_ = a.Grades(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
