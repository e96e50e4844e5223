package ports

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// EnvManager owns the isolated Python environment: creation and every
// install that targets it. The environment is always an explicit value, never
// an activated process state.
type EnvManager interface {
	// Create builds the environment directory. It refuses an existing
	// directory unless force is set, in which case the directory is
	// removed and rebuilt.
	Create(ctx context.Context, env domain.Venv, force bool) error

	UpgradePip(ctx context.Context, env domain.Venv) error
	InstallRequirements(ctx context.Context, env domain.Venv, manifest string) error
	InstallEditable(ctx context.Context, env domain.Venv, projectRoot string) error
	InstallPackage(ctx context.Context, env domain.Venv, name string) error
}
