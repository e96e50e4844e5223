//go:build !windows

package pyenv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
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

func TestCreate_RefusesExistingDirWithoutForce(t *testing.T) {
	root := t.TempDir()
	env := domain.NewVenv(root, ".venv")
	if err := os.MkdirAll(env.Dir, 0o755); err != nil {
		t.Fatal(err)
	}

	rr := &recordingRunner{}
	m := NewManager(rr)

	err := m.Create(context.Background(), env, false)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if len(rr.commands) != 0 {
		t.Fatalf("no command should run, got %v", rr.commands)
	}
}

func TestCreate_ForceRemovesAndRecreates(t *testing.T) {
	root := t.TempDir()
	env := domain.NewVenv(root, ".venv")
	if err := os.MkdirAll(filepath.Join(env.Dir, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}

	rr := &recordingRunner{}
	m := NewManager(rr, WithPython("python3.12"))

	if err := m.Create(context.Background(), env, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(env.Dir); !os.IsNotExist(err) {
		t.Fatal("stale environment directory should be removed before recreation")
	}

	if len(rr.commands) != 1 {
		t.Fatalf("commands = %v", rr.commands)
	}
	cmd := rr.commands[0]
	if cmd.Name != "python3.12" {
		t.Fatalf("python = %q", cmd.Name)
	}
	want := []string{"-m", "venv", env.Dir}
	if strings.Join(cmd.Args, " ") != strings.Join(want, " ") {
		t.Fatalf("args = %v, want %v", cmd.Args, want)
	}
}

func TestInstallRequirements_MissingManifest(t *testing.T) {
	root := t.TempDir()
	env := domain.NewVenv(root, ".venv")

	rr := &recordingRunner{}
	m := NewManager(rr)

	err := m.InstallRequirements(context.Background(), env, "requirements.txt")
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if len(rr.commands) != 0 {
		t.Fatal("pip must not run without a manifest")
	}
}

func TestInstallRequirements_UsesEnvPip(t *testing.T) {
	root := t.TempDir()
	env := domain.NewVenv(root, ".venv")
	manifest := filepath.Join(root, "requirements.txt")
	if err := os.WriteFile(manifest, []byte("ruamel.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rr := &recordingRunner{}
	m := NewManager(rr)

	if err := m.InstallRequirements(context.Background(), env, "requirements.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := rr.commands[0]
	if cmd.Name != env.Pip() {
		t.Fatalf("pip = %q, want %q", cmd.Name, env.Pip())
	}
	if cmd.Args[0] != "install" || cmd.Args[1] != "-r" || cmd.Args[2] != manifest {
		t.Fatalf("args = %v", cmd.Args)
	}
}

func TestInstallEditable_RunsInProjectRoot(t *testing.T) {
	root := t.TempDir()
	env := domain.NewVenv(root, ".venv")

	rr := &recordingRunner{}
	m := NewManager(rr)

	if err := m.InstallEditable(context.Background(), env, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := rr.commands[0]
	if cmd.Dir != root {
		t.Fatalf("dir = %q, want project root", cmd.Dir)
	}
	if strings.Join(cmd.Args, " ") != "install -e ." {
		t.Fatalf("args = %v", cmd.Args)
	}
}
