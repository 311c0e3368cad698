package cli

import "testing"

func TestGate_StartsIdle(t *testing.T) {
	g := NewStepUpGate("4321")
	if g.State() != GateIdle {
		t.Fatalf("want GateIdle, got %v", g.State())
	}
}

func TestGate_ArmRecordsPendingDestination(t *testing.T) {
	g := NewStepUpGate("4321")
	g.Arm("expenses")
	if g.State() != GatePrompting {
		t.Fatalf("want GatePrompting, got %v", g.State())
	}
	if g.Pending() != "expenses" {
		t.Fatalf("pending destination not recorded: %q", g.Pending())
	}
}

func TestGate_ExactSecretGrantsAndNavigates(t *testing.T) {
	g := NewStepUpGate("4321")
	g.Arm("history")

	dest, ok := g.Submit("4321")
	if !ok {
		t.Fatal("want grant")
	}
	if dest != "history" {
		t.Fatalf("want pending destination back, got %q", dest)
	}
	if g.State() != GateGranted {
		t.Fatalf("want GateGranted, got %v", g.State())
	}
	if g.Pending() != "" {
		t.Fatal("pending not cleared after grant")
	}
}

func TestGate_SubmittedSecretIsTrimmed(t *testing.T) {
	g := NewStepUpGate("4321")
	g.Arm("expenses")

	if _, ok := g.Submit("  4321\n"); !ok {
		t.Fatal("whitespace around the secret should not deny")
	}
}

func TestGate_WrongSecretDeniesWithoutNavigation(t *testing.T) {
	g := NewStepUpGate("4321")
	g.Arm("expenses")

	dest, ok := g.Submit("1111")
	if ok || dest != "" {
		t.Fatalf("want denial with no destination, got ok=%v dest=%q", ok, dest)
	}
	if g.State() != GateDenied {
		t.Fatalf("want GateDenied, got %v", g.State())
	}
	if g.Pending() != "" {
		t.Fatal("pending not cleared after denial")
	}
}

func TestGate_ComparisonIsCaseSensitive(t *testing.T) {
	g := NewStepUpGate("Pin7")
	g.Arm("expenses")

	if _, ok := g.Submit("pin7"); ok {
		t.Fatal("case-insensitive match must not grant")
	}
}

func TestGate_EmptySubmissionAlwaysDenied(t *testing.T) {
	g := NewStepUpGate("4321")
	g.Arm("expenses")
	if _, ok := g.Submit("   "); ok {
		t.Fatal("empty secret must never grant")
	}

	// Even when the stored secret is itself empty.
	g = NewStepUpGate("")
	g.Arm("expenses")
	if _, ok := g.Submit(""); ok {
		t.Fatal("empty stored secret must never grant")
	}
}

func TestGate_RearmsFreshAfterDenial(t *testing.T) {
	g := NewStepUpGate("4321")

	g.Arm("expenses")
	g.Submit("wrong")

	g.Arm("history")
	if g.State() != GatePrompting {
		t.Fatalf("re-arming after denial should prompt again, got %v", g.State())
	}
	dest, ok := g.Submit("4321")
	if !ok || dest != "history" {
		t.Fatalf("no lockout expected: ok=%v dest=%q", ok, dest)
	}
}

func TestGate_SubmitWithoutArmIsNoop(t *testing.T) {
	g := NewStepUpGate("4321")
	if dest, ok := g.Submit("4321"); ok || dest != "" {
		t.Fatal("submit before arming must not grant")
	}
}
