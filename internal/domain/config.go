package domain

// Config represents the minimal bootstrap configuration loaded from
// repoinit.yaml at the project root.
type Config struct {
	Python string
	Paths  PathsConfig
	Git    GitConfig
}

type PathsConfig struct {
	VenvDir      string
	Requirements string
}

type GitConfig struct {
	CommitMessage string
	Push          bool
}

// DefaultConfig provides sane defaults if repoinit.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Python: "python3",
		Paths: PathsConfig{
			VenvDir:      ".venv",
			Requirements: "requirements.txt",
		},
		Git: GitConfig{
			CommitMessage: "Initialize repository from template",
			Push:          true,
		},
	}
}
