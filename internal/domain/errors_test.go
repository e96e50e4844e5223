package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpError_FormatAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &OpError{Op: "pyenv.create", Kind: KindExecution, Path: "/tmp/x/.venv", Err: cause}

	msg := err.Error()
	for _, want := range []string{"pyenv.create", "execution", "/tmp/x/.venv", "boom"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
	if !IsKind(err, KindExecution) {
		t.Fatal("expected IsKind(KindExecution)")
	}
	if IsKind(err, KindNotFound) {
		t.Fatal("unexpected IsKind(KindNotFound)")
	}
}

func TestFailedStep(t *testing.T) {
	cause := errors.New("exit status 1")
	err := fmt.Errorf("bootstrap: %w", &StepError{Step: StepGitCommit, Err: cause})

	step, ok := FailedStep(err)
	if !ok || step != StepGitCommit {
		t.Fatalf("FailedStep = (%q, %v), want (%q, true)", step, ok, StepGitCommit)
	}

	if step, ok := FailedStep(errors.New("plain")); ok {
		t.Fatalf("FailedStep on plain error = (%q, true), want miss", step)
	}
}
