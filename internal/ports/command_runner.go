package ports

import (
	"context"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// CommandRunner executes a single external command and waits for it.
// The returned error is non-nil when the command could not start, the
// context was cancelled, or the command exited non-zero; the result carries
// captured output and the exit code in every case where the process ran.
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
