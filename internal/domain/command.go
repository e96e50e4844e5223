package domain

// Command is a single external invocation with an explicit working directory.
// Keep it generic so the domain does not depend on os/exec types.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env entries (KEY=VALUE) appended on top of the parent environment.
	Env []string
}

// CommandResult stores the captured outcome of a finished command.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}
