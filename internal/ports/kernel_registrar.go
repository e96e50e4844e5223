package ports

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// KernelRegistrar registers the environment as a named Jupyter kernel,
// scoped to the current user.
type KernelRegistrar interface {
	Register(ctx context.Context, env domain.Venv, name string) error
}

// KernelSpec is one entry from the installed kernelspec catalog.
type KernelSpec struct {
	Name        string
	DisplayName string
	ResourceDir string
}

// KernelCatalog lists the kernelspecs visible to the tooling.
type KernelCatalog interface {
	List(ctx context.Context) ([]KernelSpec, error)
}
