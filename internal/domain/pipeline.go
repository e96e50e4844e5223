package domain

import "time"

// StepID identifies one step of the bootstrap pipeline.
type StepID string

const (
	StepName           StepID = "name"
	StepVenvCreate     StepID = "venv.create"
	StepPipUpgrade     StepID = "pip.upgrade"
	StepDepsInstall    StepID = "deps.install"
	StepInit           StepID = "init"
	StepProjectInstall StepID = "project.install"
	StepKernelInstall  StepID = "kernel.install"
	StepKernelRegister StepID = "kernel.register"
	StepGitAdd         StepID = "git.add"
	StepGitCommit      StepID = "git.commit"
	StepGitPush        StepID = "git.push"
)

// StepStatus is the outcome of a single step.
type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepRunning StepStatus = "running"
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// StepPlan describes one step of the pipeline without executing it.
type StepPlan struct {
	ID    StepID
	Title string
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	ID         StepID     `json:"id"`
	Title      string     `json:"title"`
	Status     StepStatus `json:"status"`
	DurationMS int64      `json:"duration_ms"`
	Error      string     `json:"error,omitempty"`
}

// StepPhase distinguishes the two observer notifications per step.
type StepPhase string

const (
	PhaseStarted  StepPhase = "started"
	PhaseFinished StepPhase = "finished"
)

// StepEvent is emitted to observers as the pipeline advances.
type StepEvent struct {
	Phase  StepPhase
	Index  int // 1-based position in the plan
	Total  int
	Step   StepID
	Title  string
	Result *StepResult // set for PhaseFinished
}

// BootstrapRecord represents a persisted bootstrap run for later inspection.
type BootstrapRecord struct {
	Identifier string `json:"identifier"`
	Root       string `json:"root"`
	VenvDir    string `json:"venv_dir"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Steps []StepResult `json:"steps"`

	// FailedStep is empty when every step succeeded.
	FailedStep StepID `json:"failed_step,omitempty"`
}

// Succeeded reports whether the whole pipeline completed.
func (r BootstrapRecord) Succeeded() bool {
	return r.FailedStep == ""
}
