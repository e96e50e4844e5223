package usecase

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

// RenameTemplate runs only the template initialization, outside the full
// bootstrap pipeline.
type RenameTemplate struct {
	initializer ports.ProjectInitializer
}

func NewRenameTemplate(initializer ports.ProjectInitializer) *RenameTemplate {
	return &RenameTemplate{initializer: initializer}
}

func (uc *RenameTemplate) Execute(ctx context.Context, root string) error {
	return uc.initializer.Init(ctx, root)
}
