// Package initscript runs an external initialization script as the
// pipeline's init capability. The script is an opaque collaborator: it gets
// no arguments and no contract beyond its exit code.
package initscript

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

type Initializer struct {
	runner ports.CommandRunner
	env    domain.Venv
	script string // path relative to the project root, or absolute
}

func New(runner ports.CommandRunner, env domain.Venv, script string) *Initializer {
	return &Initializer{
		runner: runner,
		env:    env,
		script: script,
	}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

func (i *Initializer) Init(ctx context.Context, root string) error {
	path := i.script
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if _, err := os.Stat(path); err != nil {
		return &domain.OpError{
			Op:   "initscript.run",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	cmd := domain.Command{Name: path, Dir: root}
	if strings.EqualFold(filepath.Ext(path), ".py") {
		// Python scripts run under the environment's interpreter so they
		// see the freshly installed dependencies.
		cmd = domain.Command{
			Name: i.env.Interpreter(),
			Args: []string{path},
			Dir:  root,
		}
	}

	_, err := i.runner.Run(ctx, cmd)
	return err
}
