// Package template rewrites the cloned template in place so the project
// carries the repository's own name: the placeholder package directory under
// src/, the packaging descriptor, and the docs site name.
package template

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

func (i *Initializer) Init(_ context.Context, root string) error {
	root = filepath.Clean(root)
	name := domain.RepoName(root)
	pkg := domain.NormalizePackageName(name)

	if err := renamePackageDir(root, pkg); err != nil {
		return err
	}
	if err := SetProjectName(root, pkg); err != nil {
		return err
	}
	return SetSiteName(root, name)
}

func renamePackageDir(root, pkg string) error {
	oldDir := filepath.Join(root, "src", domain.TemplatePackage)
	newDir := filepath.Join(root, "src", pkg)

	if oldDir == newDir {
		// Repo is literally named after the template; nothing to move.
		return nil
	}

	if _, err := os.Stat(oldDir); err != nil {
		return &domain.OpError{
			Op:   "template.rename",
			Kind: domain.KindNotFound,
			Path: oldDir,
			Err:  err,
		}
	}
	if _, err := os.Stat(newDir); err == nil {
		return &domain.OpError{
			Op:   "template.rename",
			Kind: domain.KindConflict,
			Path: newDir,
			Err:  domain.ErrConflict,
		}
	}

	if err := os.Rename(oldDir, newDir); err != nil {
		return &domain.OpError{
			Op:   "template.rename",
			Kind: domain.KindExecution,
			Path: newDir,
			Err:  err,
		}
	}
	return nil
}
