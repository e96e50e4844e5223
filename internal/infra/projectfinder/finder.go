package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// Finder locates the project root by searching for pyproject.toml upward.
type Finder struct {
	MarkerFile string // defaults to "pyproject.toml"
}

func NewFinder() *Finder {
	return &Finder{MarkerFile: "pyproject.toml"}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		marker := filepath.Join(cur, f.MarkerFile)
		if _, err := os.Stat(marker); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
