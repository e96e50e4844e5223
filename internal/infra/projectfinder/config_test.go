package projectfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_OverlaysOnDefaults(t *testing.T) {
	root := t.TempDir()
	content := `repoinit:
  python: python3.12
  paths:
    venv_dir: env
  git:
    push: false
`
	if err := os.WriteFile(filepath.Join(root, "repoinit.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Python != "python3.12" {
		t.Fatalf("python = %q", cfg.Python)
	}
	if cfg.Paths.VenvDir != "env" {
		t.Fatalf("venv_dir = %q", cfg.Paths.VenvDir)
	}
	if cfg.Git.Push {
		t.Fatal("push should be disabled")
	}

	// Untouched fields keep their defaults.
	if cfg.Paths.Requirements != "requirements.txt" {
		t.Fatalf("requirements = %q", cfg.Paths.Requirements)
	}
	if cfg.Git.CommitMessage != "Initialize repository from template" {
		t.Fatalf("commit_message = %q", cfg.Git.CommitMessage)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "repoinit.yaml"), []byte("repoinit: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(root); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
