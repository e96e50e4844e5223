// Package jupyter integrates the bootstrapped environment with the
// interactive notebook tooling.
package jupyter

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

type Registrar struct {
	runner ports.CommandRunner
}

func NewRegistrar(runner ports.CommandRunner) *Registrar {
	return &Registrar{runner: runner}
}

var _ ports.KernelRegistrar = (*Registrar)(nil)

// Register installs a user-scoped kernelspec backed by the environment's
// interpreter, so notebooks can pick the project by name.
func (r *Registrar) Register(ctx context.Context, env domain.Venv, name string) error {
	_, err := r.runner.Run(ctx, domain.Command{
		Name: env.Interpreter(),
		Args: []string{"-m", "ipykernel", "install", "--user", "--name", name},
		Dir:  env.Root,
	})
	return err
}
