// Package execrunner adapts os/exec to the ports.CommandRunner contract.
package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

// stderrTailLimit bounds how much captured stderr is echoed into errors.
const stderrTailLimit = 2048

type Runner struct{}

func New() *Runner {
	return &Runner{}
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run executes cmd and waits for it. Stdout and stderr are captured in full;
// a non-zero exit is returned as an error carrying the step's native stderr
// tail, so the operator sees the failing tool's own message.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	if cmd.Name == "" {
		return domain.CommandResult{}, &domain.OpError{
			Op:   "execrunner.run",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("command name is empty"),
		}
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()

	res := domain.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err == nil {
		return res, nil
	}

	if ctx.Err() != nil {
		return res, &domain.OpError{
			Op:   "execrunner.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: %w", commandLine(cmd), ctx.Err()),
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &domain.OpError{
			Op:   "execrunner.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: exit status %d%s", commandLine(cmd), res.ExitCode, stderrTail(res.Stderr)),
		}
	}

	// Start failure: binary missing, permission, bad dir.
	return res, &domain.OpError{
		Op:   "execrunner.run",
		Kind: domain.KindExecution,
		Err:  fmt.Errorf("%s: %w", commandLine(cmd), err),
	}
}

func commandLine(cmd domain.Command) string {
	if len(cmd.Args) == 0 {
		return cmd.Name
	}
	return cmd.Name + " " + strings.Join(cmd.Args, " ")
}

func stderrTail(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return ""
	}
	if len(s) > stderrTailLimit {
		s = s[len(s)-stderrTailLimit:]
		// The cut can land inside a multi-byte rune; skip to the next start.
		for len(s) > 0 && !utf8.RuneStart(s[0]) {
			s = s[1:]
		}
	}
	return ": " + s
}
