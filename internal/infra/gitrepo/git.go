// Package gitrepo publishes the bootstrapped repository state through the
// git CLI. Authentication and the remote are whatever the clone already has
// configured.
package gitrepo

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

type Repo struct {
	runner ports.CommandRunner
	ignore []string
}

type Option func(*Repo)

// WithIgnoreEntries replaces the .gitignore entries Stage maintains. The
// environment directory entry must match the configured venv_dir, or
// `git add -A` stages the whole environment.
func WithIgnoreEntries(entries ...string) Option {
	return func(r *Repo) { r.ignore = entries }
}

func New(runner ports.CommandRunner, opts ...Option) *Repo {
	r := &Repo{
		runner: runner,
		ignore: []string{".venv/", ".repoinit/"},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var _ ports.Publisher = (*Repo)(nil)

// Stage adds every change, after making sure the tool's own artifacts stay
// out of history.
func (r *Repo) Stage(ctx context.Context, root string) error {
	if err := ensureGitignore(root, r.ignore); err != nil {
		return err
	}
	_, err := r.runner.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{"add", "-A"},
		Dir:  root,
	})
	return err
}

// Commit creates one commit with the given message. A clean tree makes git
// itself fail ("nothing to commit"); that failure is propagated unchanged.
func (r *Repo) Commit(ctx context.Context, root, message string) error {
	_, err := r.runner.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{"commit", "-m", message},
		Dir:  root,
	})
	return err
}

// Push sends the commit to the configured remote of the current branch.
func (r *Repo) Push(ctx context.Context, root string) error {
	_, err := r.runner.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{"push"},
		Dir:  root,
	})
	return err
}

// HasChanges reports whether the working tree has anything to stage.
func (r *Repo) HasChanges(ctx context.Context, root string) (bool, error) {
	res, err := r.runner.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{"status", "--porcelain"},
		Dir:  root,
	})
	if err != nil {
		return false, err
	}
	return len(res.Stdout) > 0, nil
}
