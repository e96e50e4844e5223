package domain

import (
	"path/filepath"
	"runtime"
)

// Venv is the explicit handle to an isolated Python environment. Steps that
// target the environment receive this value instead of relying on an
// "activated" process environment.
type Venv struct {
	Root string // project root (absolute)
	Dir  string // environment directory (absolute)
}

// NewVenv resolves dir against root when it is relative.
func NewVenv(root, dir string) Venv {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return Venv{Root: filepath.Clean(root), Dir: filepath.Clean(dir)}
}

// Interpreter returns the path of the environment's Python executable.
func (v Venv) Interpreter() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Dir, "Scripts", "python.exe")
	}
	return filepath.Join(v.Dir, "bin", "python")
}

// Pip returns the path of the environment's pip executable.
func (v Venv) Pip() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Dir, "Scripts", "pip.exe")
	}
	return filepath.Join(v.Dir, "bin", "pip")
}

// RelDir returns the environment directory relative to the project root when
// possible, for display and gitignore entries.
func (v Venv) RelDir() string {
	rel, err := filepath.Rel(v.Root, v.Dir)
	if err != nil {
		return v.Dir
	}
	return rel
}
