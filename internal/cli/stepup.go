package cli

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"
)

// getSecret is an indirection over the interactive secret prompt, swappable
// in tests.
var getSecret = GetSecret

// GateState is the step-up gate's position. The gate keeps no memory of past
// attempts: re-arming from Granted or Denied simply returns to Prompting.
type GateState int

const (
	GateIdle GateState = iota
	GatePrompting
	GateGranted
	GateDenied
)

// protectedRoutes is the fixed set of navigation targets that require
// step-up confirmation before opening.
var protectedRoutes = map[string]bool{
	"expenses": true,
	"history":  true,
}

// StepUpGate guards sensitive navigation behind the account's secondary
// secret. Transitions: Idle → Prompting (Arm records the pending
// destination), Prompting → Granted or Denied (Submit compares the entered
// secret and clears the pending destination either way).
type StepUpGate struct {
	secret  string
	state   GateState
	pending string
}

func NewStepUpGate(secret string) *StepUpGate {
	return &StepUpGate{secret: strings.TrimSpace(secret)}
}

// Arm records dest as the pending destination and moves to Prompting.
// Arming again always starts fresh; there is no lockout or retry counter.
func (g *StepUpGate) Arm(dest string) {
	g.pending = dest
	g.state = GatePrompting
}

// Submit compares the entered secret, trimmed of surrounding whitespace,
// against the stored one (exact, case-sensitive). On a match it returns the
// pending destination and moves to Granted; otherwise it moves to Denied.
// The pending destination is cleared in both cases. An empty submission is
// always denied.
func (g *StepUpGate) Submit(input string) (string, bool) {
	if g.state != GatePrompting {
		return "", false
	}
	dest := g.pending
	g.pending = ""

	trimmed := strings.TrimSpace(input)
	if trimmed == "" || g.secret == "" ||
		subtle.ConstantTimeCompare([]byte(trimmed), []byte(g.secret)) != 1 {
		g.state = GateDenied
		return "", false
	}

	g.state = GateGranted
	return dest, true
}

func (g *StepUpGate) State() GateState { return g.state }

// Pending returns the recorded destination while the gate is prompting.
func (g *StepUpGate) Pending() string { return g.pending }

// navigate opens dest, inserting the step-up prompt when dest belongs to the
// protected set. A denied attempt surfaces a notification and stays on the
// current view.
func (a *App) navigate(ctx context.Context, dest string) error {
	if !protectedRoutes[dest] {
		return a.openView(ctx, dest)
	}

	a.gate.Arm(dest)
	secret, err := getSecret(os.Stdout)
	if err != nil {
		// Treat an unreadable secret like a failed attempt.
		secret = ""
	}

	granted, ok := a.gate.Submit(secret)
	if !ok {
		fmt.Println("Invalid BIN. Please try again.")
		return nil
	}
	return a.openView(ctx, granted)
}
