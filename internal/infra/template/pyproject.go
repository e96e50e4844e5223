package template

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// SetProjectName rewrites [project].name in pyproject.toml.
func SetProjectName(root, name string) error {
	path := filepath.Join(root, "pyproject.toml")

	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   "template.pyproject",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc map[string]any
	if err := toml.Unmarshal(b, &doc); err != nil {
		return &domain.OpError{
			Op:   "template.pyproject",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	project, ok := doc["project"].(map[string]any)
	if !ok {
		project = map[string]any{}
	}
	project["name"] = name
	doc["project"] = project

	out, err := toml.Marshal(doc)
	if err != nil {
		return &domain.OpError{
			Op:   "template.pyproject",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &domain.OpError{
			Op:   "template.pyproject",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
