package initscript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

type recordingRunner struct {
	commands []domain.Command
}

func (r *recordingRunner) Run(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	r.commands = append(r.commands, cmd)
	return domain.CommandResult{}, nil
}

func TestInit_PythonScriptRunsUnderEnvInterpreter(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "scripts", "init_repo.py")
	if err := os.MkdirAll(filepath.Dir(script), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(script, []byte("print('init')\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	rr := &recordingRunner{}
	env := domain.NewVenv(root, ".venv")

	if err := New(rr, env, "scripts/init_repo.py").Init(context.Background(), root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := rr.commands[0]
	if cmd.Name != env.Interpreter() {
		t.Fatalf("interpreter = %q", cmd.Name)
	}
	if len(cmd.Args) != 1 || cmd.Args[0] != script {
		t.Fatalf("args = %v, scripts must run with no extra arguments", cmd.Args)
	}
	if cmd.Dir != root {
		t.Fatalf("dir = %q", cmd.Dir)
	}
}

func TestInit_NonPythonScriptRunsDirectly(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "init.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	rr := &recordingRunner{}
	env := domain.NewVenv(root, ".venv")

	if err := New(rr, env, "init.sh").Init(context.Background(), root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := rr.commands[0]
	if cmd.Name != script || len(cmd.Args) != 0 {
		t.Fatalf("command = %+v", cmd)
	}
}

func TestInit_MissingScriptFailsBeforeRunning(t *testing.T) {
	root := t.TempDir()
	rr := &recordingRunner{}
	env := domain.NewVenv(root, ".venv")

	err := New(rr, env, "scripts/init_repo.py").Init(context.Background(), root)
	if err == nil {
		t.Fatal("expected error for missing script")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if len(rr.commands) != 0 {
		t.Fatal("nothing should run when the script is missing")
	}
}
