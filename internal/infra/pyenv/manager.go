// Package pyenv manages the project's isolated Python environment. Every
// operation addresses the environment through its explicit paths; nothing
// here depends on an "activated" shell session.
package pyenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

type Manager struct {
	runner ports.CommandRunner
	python string // interpreter used to create environments
}

type Option func(*Manager)

// WithPython overrides the interpreter used for environment creation.
func WithPython(python string) Option {
	return func(m *Manager) { m.python = python }
}

func NewManager(runner ports.CommandRunner, opts ...Option) *Manager {
	m := &Manager{
		runner: runner,
		python: "python3",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ ports.EnvManager = (*Manager)(nil)

// Create builds the environment directory. Re-running against an existing
// directory is refused unless force is set; force removes and rebuilds it.
func (m *Manager) Create(ctx context.Context, env domain.Venv, force bool) error {
	if _, err := os.Stat(env.Dir); err == nil {
		if !force {
			return &domain.OpError{
				Op:   "pyenv.create",
				Kind: domain.KindConflict,
				Path: env.Dir,
				Err:  domain.ErrConflict,
			}
		}
		if err := os.RemoveAll(env.Dir); err != nil {
			return &domain.OpError{
				Op:   "pyenv.create",
				Kind: domain.KindExecution,
				Path: env.Dir,
				Err:  err,
			}
		}
	}

	_, err := m.runner.Run(ctx, domain.Command{
		Name: m.python,
		Args: []string{"-m", "venv", env.Dir},
		Dir:  env.Root,
	})
	return err
}

func (m *Manager) UpgradePip(ctx context.Context, env domain.Venv) error {
	_, err := m.runner.Run(ctx, domain.Command{
		Name: env.Interpreter(),
		Args: []string{"-m", "pip", "install", "--upgrade", "pip"},
		Dir:  env.Root,
	})
	return err
}

// InstallRequirements installs the dependency manifest. A missing manifest
// is reported before pip runs, so the failure names the file instead of
// pip's generic usage error.
func (m *Manager) InstallRequirements(ctx context.Context, env domain.Venv, manifest string) error {
	path := manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(env.Root, manifest)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.OpError{
				Op:   "pyenv.requirements",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  domain.ErrNotFound,
			}
		}
		return &domain.OpError{
			Op:   "pyenv.requirements",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	_, err := m.runner.Run(ctx, domain.Command{
		Name: env.Pip(),
		Args: []string{"install", "-r", path},
		Dir:  env.Root,
	})
	return err
}

func (m *Manager) InstallEditable(ctx context.Context, env domain.Venv, projectRoot string) error {
	_, err := m.runner.Run(ctx, domain.Command{
		Name: env.Pip(),
		Args: []string{"install", "-e", "."},
		Dir:  projectRoot,
	})
	return err
}

func (m *Manager) InstallPackage(ctx context.Context, env domain.Venv, name string) error {
	_, err := m.runner.Run(ctx, domain.Command{
		Name: env.Pip(),
		Args: []string{"install", name},
		Dir:  env.Root,
	})
	return err
}
