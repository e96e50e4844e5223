package ports

import "github.com/sruddy1/ir-pipeline-template/internal/domain"

// RunRecorder persists a bootstrap run for later inspection.
type RunRecorder interface {
	SaveRecord(rec domain.BootstrapRecord) (string, error)
}
