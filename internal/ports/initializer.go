package ports

import "context"

// ProjectInitializer is the capability behind the pipeline's init step.
// The default binding rewrites the template in place; an alternative binding
// runs an external script whose behavior is opaque to the pipeline.
type ProjectInitializer interface {
	Init(ctx context.Context, root string) error
}
