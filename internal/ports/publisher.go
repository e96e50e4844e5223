package ports

import "context"

// Publisher records and shares the repository state via version control.
type Publisher interface {
	Stage(ctx context.Context, root string) error
	Commit(ctx context.Context, root, message string) error
	Push(ctx context.Context, root string) error
	// HasChanges reports whether the working tree has anything to stage.
	HasChanges(ctx context.Context, root string) (bool, error)
}
