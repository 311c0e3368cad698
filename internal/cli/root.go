package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.user.Email)
}

// Root runs the top-level REPL. The session guard executes once on entry;
// its outcome decides which commands the prompt offers.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to finledger (type 'help' for commands)")

	a.establishSession(ctx)

	for {
		fmt.Printf("fl %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				fmt.Println("Available commands: profile, expenses, history, logout, exit")
			} else {
				fmt.Println("Available commands: token, session, exit")
			}

		case "token":
			if err := a.Token(ctx); err != nil {
				fmt.Println("Error:", err)
			}

		case "session":
			a.establishSession(ctx)

		case "profile":
			if !a.requireSession() {
				continue
			}
			_ = a.Profile(ctx)

		case "expenses", "history":
			if !a.requireSession() {
				continue
			}
			if err := a.navigate(ctx, cmd); err != nil {
				fmt.Println("Error:", err)
			}

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// requireSession blocks private commands until a user context exists.
func (a *App) requireSession() bool {
	if a.isAuthenticated() {
		return true
	}
	fmt.Println("Please provide a credential first ('token').")
	return false
}
