package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads repoinit.yaml from the project root and applies defaults.
// A missing file is not an error: the defaults cover the stock template.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "repoinit.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Repoinit.Python != "" {
		cfg.Python = y.Repoinit.Python
	}
	if y.Repoinit.Paths.VenvDir != "" {
		cfg.Paths.VenvDir = y.Repoinit.Paths.VenvDir
	}
	if y.Repoinit.Paths.Requirements != "" {
		cfg.Paths.Requirements = y.Repoinit.Paths.Requirements
	}
	if y.Repoinit.Git.CommitMessage != "" {
		cfg.Git.CommitMessage = y.Repoinit.Git.CommitMessage
	}
	if y.Repoinit.Git.Push != nil {
		cfg.Git.Push = *y.Repoinit.Git.Push
	}

	return cfg, nil
}

type yamlConfig struct {
	Repoinit struct {
		Python string `yaml:"python"`

		Paths struct {
			VenvDir      string `yaml:"venv_dir"`
			Requirements string `yaml:"requirements"`
		} `yaml:"paths"`

		Git struct {
			CommitMessage string `yaml:"commit_message"`
			Push          *bool  `yaml:"push"`
		} `yaml:"git"`
	} `yaml:"repoinit"`
}
