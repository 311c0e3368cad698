package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"finledger/internal/session"
)

// getSimpleText is an indirection over the interactive line prompt,
// swappable in tests.
var getSimpleText = GetSimpleText

// establishSession runs the session guard and applies the side effects its
// decision calls for. The validation itself is pure (session.Guard); only
// this method clears storage or changes what the prompt offers.
func (a *App) establishSession(ctx context.Context) {
	user, err := a.guard.Validate(ctx)
	if err == nil {
		a.user = user
		a.gate = NewStepUpGate(user.BIN)
		fmt.Printf("Welcome, %s\n", displayName(user.Username))
		return
	}

	switch {
	case errors.Is(err, session.ErrNoSession):
		// Nothing stored and nothing to clean up; stay at the logged-out prompt.
		fmt.Println("No session found. Use 'token' to provide a credential.")
	case errors.Is(err, session.ErrMalformedToken):
		a.clearSession(ctx)
		fmt.Println("Invalid token. Please log in again.")
	case errors.Is(err, session.ErrSessionInvalid):
		a.clearSession(ctx)
		fmt.Println("Failed to load user data. Please login again.")
	default:
		a.log.Error(ctx, "session validation failed", "err", err)
		fmt.Println("Could not read session state:", err)
	}
}

// Token accepts a credential issued by the external login flow, stores it in
// the token slot, and immediately re-runs the guard against it.
func (a *App) Token(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste credential token", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("Empty token ignored.")
		return nil
	}

	if err := a.store.SaveToken(ctx, token); err != nil {
		return err
	}
	a.establishSession(ctx)
	return nil
}

// Logout clears all stored session state and returns to the logged-out
// prompt.
func (a *App) Logout(ctx context.Context) error {
	a.clearSession(ctx)
	fmt.Println("Logged out.")
	return nil
}

func (a *App) clearSession(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session state", "err", err)
	}
	a.user = nil
	a.gate = nil
}

// Profile renders the dashboard view of the current user context.
func (a *App) Profile(ctx context.Context) error {
	u := a.user
	fmt.Printf("Username: %s\n", displayName(u.Username))
	fmt.Printf("Email:    %s\n", orNA(u.Email))
	fmt.Printf("Phone:    %s\n", orNA(u.PhoneNumber))
	fmt.Printf("DOB:      %s\n", orNA(u.DateOfBirth))
	fmt.Printf("Balance:  %.2f\n", u.Balance)
	return nil
}

func displayName(username string) string {
	if username == "" {
		return "User"
	}
	return username
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
