package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sruddy1/ir-pipeline-template/internal/app/render"
	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

// BootstrapParams carries everything the pipeline needs. The environment is
// threaded through as an explicit value derived from Root and Config; no step
// mutates the process environment.
type BootstrapParams struct {
	Root   string
	Config domain.Config

	// Force recreates an existing environment directory.
	Force bool
	// NoPush stops after the commit step; push is recorded as skipped.
	NoPush bool
}

// Observer receives pipeline progress events.
type Observer func(domain.StepEvent)

// Bootstrap executes the ordered environment-bootstrap pipeline: identifier,
// virtual environment, dependencies, template initialization, editable
// install, kernel registration, then commit and push. The first failing step
// aborts the remainder; there is no retry and no rollback.
type Bootstrap struct {
	envs        ports.EnvManager
	initializer ports.ProjectInitializer
	kernels     ports.KernelRegistrar
	git         ports.Publisher
	recorder    ports.RunRecorder // optional
	observe     Observer          // optional
}

func NewBootstrap(
	envs ports.EnvManager,
	initializer ports.ProjectInitializer,
	kernels ports.KernelRegistrar,
	git ports.Publisher,
	recorder ports.RunRecorder,
) *Bootstrap {
	return &Bootstrap{
		envs:        envs,
		initializer: initializer,
		kernels:     kernels,
		git:         git,
		recorder:    recorder,
	}
}

// Observe sets a progress callback. It is invoked synchronously from
// Execute, twice per step.
func (uc *Bootstrap) Observe(fn Observer) {
	uc.observe = fn
}

const kernelPackage = "ipykernel"

type step struct {
	id    domain.StepID
	title string
	run   func(ctx context.Context) error
}

func (uc *Bootstrap) steps(p BootstrapParams, ident *string) []step {
	env := domain.NewVenv(p.Root, p.Config.Paths.VenvDir)

	return []step{
		{domain.StepName, "derive project identifier", func(context.Context) error {
			if p.Root == "" {
				return &domain.OpError{
					Op:   "bootstrap.name",
					Kind: domain.KindInvalidConfig,
					Err:  errors.New("project root is empty"),
				}
			}
			*ident = domain.RepoName(p.Root)
			return nil
		}},
		{domain.StepVenvCreate, "create virtual environment", func(ctx context.Context) error {
			return uc.envs.Create(ctx, env, p.Force)
		}},
		{domain.StepPipUpgrade, "upgrade pip", func(ctx context.Context) error {
			return uc.envs.UpgradePip(ctx, env)
		}},
		{domain.StepDepsInstall, "install requirements", func(ctx context.Context) error {
			return uc.envs.InstallRequirements(ctx, env, p.Config.Paths.Requirements)
		}},
		{domain.StepInit, "initialize project", func(ctx context.Context) error {
			return uc.initializer.Init(ctx, p.Root)
		}},
		{domain.StepProjectInstall, "install project (editable)", func(ctx context.Context) error {
			return uc.envs.InstallEditable(ctx, env, p.Root)
		}},
		{domain.StepKernelInstall, "install " + kernelPackage, func(ctx context.Context) error {
			return uc.envs.InstallPackage(ctx, env, kernelPackage)
		}},
		{domain.StepKernelRegister, "register Jupyter kernel", func(ctx context.Context) error {
			return uc.kernels.Register(ctx, env, *ident)
		}},
		{domain.StepGitAdd, "stage changes", func(ctx context.Context) error {
			return uc.git.Stage(ctx, p.Root)
		}},
		{domain.StepGitCommit, "commit", func(ctx context.Context) error {
			msg, err := render.String(p.Config.Git.CommitMessage, map[string]string{
				"name":    *ident,
				"package": domain.NormalizePackageName(*ident),
			})
			if err != nil {
				return err
			}
			if err := uc.git.Commit(ctx, p.Root, msg); err != nil {
				// git's own "nothing to commit" exit is opaque; name the
				// clean tree when that is what happened.
				if dirty, derr := uc.git.HasChanges(ctx, p.Root); derr == nil && !dirty {
					return fmt.Errorf("working tree is clean, nothing to commit: %w", err)
				}
				return err
			}
			return nil
		}},
		{domain.StepGitPush, "push", func(ctx context.Context) error {
			return uc.git.Push(ctx, p.Root)
		}},
	}
}

// Plan describes the steps Execute would run, in order, without side effects.
func (uc *Bootstrap) Plan(p BootstrapParams) []domain.StepPlan {
	var ident string
	steps := uc.steps(p, &ident)

	out := make([]domain.StepPlan, 0, len(steps))
	for _, s := range steps {
		out = append(out, domain.StepPlan{ID: s.id, Title: s.title})
	}
	return out
}

// Execute runs the pipeline. It returns the (possibly partial) record in
// both outcomes; on failure the error wraps a domain.StepError naming the
// first step that failed.
func (uc *Bootstrap) Execute(ctx context.Context, p BootstrapParams) (domain.BootstrapRecord, error) {
	var ident string
	steps := uc.steps(p, &ident)

	rec := domain.BootstrapRecord{
		Root:      p.Root,
		VenvDir:   p.Config.Paths.VenvDir,
		StartedAt: time.Now(),
		Steps:     make([]domain.StepResult, 0, len(steps)),
	}

	var failure error
	for i, s := range steps {
		if p.NoPush && s.id == domain.StepGitPush {
			res := domain.StepResult{
				ID:     s.id,
				Title:  s.title,
				Status: domain.StepSkipped,
			}
			rec.Steps = append(rec.Steps, res)
			uc.emit(domain.StepEvent{
				Phase:  domain.PhaseFinished,
				Index:  i + 1,
				Total:  len(steps),
				Step:   s.id,
				Title:  s.title,
				Result: &res,
			})
			continue
		}

		uc.emit(domain.StepEvent{
			Phase: domain.PhaseStarted,
			Index: i + 1,
			Total: len(steps),
			Step:  s.id,
			Title: s.title,
		})

		start := time.Now()
		err := s.run(ctx)

		res := domain.StepResult{
			ID:         s.id,
			Title:      s.title,
			Status:     domain.StepOK,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if err != nil {
			res.Status = domain.StepFailed
			res.Error = err.Error()
			failure = &domain.StepError{Step: s.id, Err: err}
			rec.FailedStep = s.id
		}

		rec.Steps = append(rec.Steps, res)

		uc.emit(domain.StepEvent{
			Phase:  domain.PhaseFinished,
			Index:  i + 1,
			Total:  len(steps),
			Step:   s.id,
			Title:  s.title,
			Result: &res,
		})

		if failure != nil {
			break
		}
	}

	rec.Identifier = ident
	rec.EndedAt = time.Now()

	if uc.recorder != nil {
		// Best effort; a failed save must not mask the pipeline outcome.
		_, _ = uc.recorder.SaveRecord(rec)
	}

	return rec, failure
}

func (uc *Bootstrap) emit(e domain.StepEvent) {
	if uc.observe != nil {
		uc.observe(e)
	}
}
