package jupyter

import (
	"context"
	"strings"
	"testing"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

type recordingRunner struct {
	commands []domain.Command
	result   domain.CommandResult
}

func (r *recordingRunner) Run(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	r.commands = append(r.commands, cmd)
	return r.result, nil
}

func TestRegister_UsesEnvInterpreterAndUserScope(t *testing.T) {
	rr := &recordingRunner{}
	env := domain.NewVenv("/work/pell-accepts", ".venv")

	if err := NewRegistrar(rr).Register(context.Background(), env, "pell-accepts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := rr.commands[0]
	if cmd.Name != env.Interpreter() {
		t.Fatalf("interpreter = %q, want %q", cmd.Name, env.Interpreter())
	}
	want := "-m ipykernel install --user --name pell-accepts"
	if got := strings.Join(cmd.Args, " "); got != want {
		t.Fatalf("args = %q, want %q", got, want)
	}
}

const kernelspecJSON = `{
  "kernelspecs": {
    "python3": {
      "resource_dir": "/usr/share/jupyter/kernels/python3",
      "spec": {
        "argv": ["python", "-m", "ipykernel_launcher", "-f", "{connection_file}"],
        "display_name": "Python 3",
        "language": "python"
      }
    },
    "pell-accepts": {
      "resource_dir": "/home/dev/.local/share/jupyter/kernels/pell-accepts",
      "spec": {
        "argv": ["/work/pell-accepts/.venv/bin/python", "-m", "ipykernel_launcher", "-f", "{connection_file}"],
        "display_name": "pell-accepts",
        "language": "python"
      }
    }
  }
}`

func TestList_ParsesKernelspecsSorted(t *testing.T) {
	rr := &recordingRunner{result: domain.CommandResult{Stdout: []byte(kernelspecJSON)}}

	specs, err := NewCatalog(rr).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("specs = %+v", specs)
	}
	if specs[0].Name != "pell-accepts" || specs[1].Name != "python3" {
		t.Fatalf("order = %q, %q", specs[0].Name, specs[1].Name)
	}
	if specs[0].DisplayName != "pell-accepts" {
		t.Fatalf("display name = %q", specs[0].DisplayName)
	}
	if specs[0].ResourceDir != "/home/dev/.local/share/jupyter/kernels/pell-accepts" {
		t.Fatalf("resource dir = %q", specs[0].ResourceDir)
	}

	cmd := rr.commands[0]
	if strings.Join(cmd.Args, " ") != "kernelspec list --json" {
		t.Fatalf("args = %v", cmd.Args)
	}
}

func TestParseKernelspecs_RejectsNonJSON(t *testing.T) {
	if _, err := parseKernelspecs([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseKernelspecs_EmptyCatalog(t *testing.T) {
	specs, err := parseKernelspecs([]byte(`{"kernelspecs": {}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 0 {
		t.Fatalf("specs = %+v", specs)
	}
}
