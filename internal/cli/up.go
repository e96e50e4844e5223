package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/execrunner"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/gitrepo"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/initscript"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/jupyter"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/logger"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/projectfinder"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/pyenv"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/runrecord"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/template"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
	"github.com/sruddy1/ir-pipeline-template/internal/tui"
	"github.com/sruddy1/ir-pipeline-template/internal/usecase"
)

func upCmd(debug *bool) *cobra.Command {
	var project string
	var plain bool
	var force bool
	var dryRun bool
	var noPush bool
	var initScript string

	c := &cobra.Command{
		Use:   "up",
		Short: "Run the full bootstrap pipeline (venv, deps, init, kernel, commit, push)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveProjectRoot(project)
			if err != nil {
				return err
			}

			cfg, err := projectfinder.LoadConfig(root)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: *debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			runner := execrunner.New()
			venv := domain.NewVenv(root, cfg.Paths.VenvDir)

			var initializer ports.ProjectInitializer = template.NewInitializer()
			if initScript != "" {
				initializer = initscript.New(runner, venv, initScript)
			}

			uc := usecase.NewBootstrap(
				pyenv.NewManager(runner, pyenv.WithPython(cfg.Python)),
				initializer,
				jupyter.NewRegistrar(runner),
				gitrepo.New(runner, gitrepo.WithIgnoreEntries(
					filepath.ToSlash(venv.RelDir())+"/",
					".repoinit/",
				)),
				runrecord.NewJSONStore(root, runrecord.WithIndex(true)),
			)

			params := usecase.BootstrapParams{
				Root:   root,
				Config: cfg,
				Force:  force,
				NoPush: noPush || !cfg.Git.Push,
			}

			if dryRun {
				printPlan(cmd.OutOrStdout(), uc.Plan(params))
				return nil
			}

			log := logger.L()
			log.Info("bootstrap.start", "root", root, "venv", venv.Dir)

			var rec domain.BootstrapRecord
			if plain {
				rec, err = runPlain(cmd.Context(), cmd.OutOrStdout(), uc, params)
			} else {
				rec, err = runWithProgress(cmd.Context(), uc, params)
			}

			if err != nil {
				if step, ok := domain.FailedStep(err); ok {
					log.Error("bootstrap.failed", "step", string(step), "error", err.Error())
				}
				return err
			}

			log.Info("bootstrap.done", "identifier", rec.Identifier)
			fmt.Fprintf(cmd.OutOrStdout(), "\nBootstrapped %q (kernel registered, %d steps)\n",
				rec.Identifier, len(rec.Steps))
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&plain, "plain", false, "Line-per-step output instead of the progress view")
	c.Flags().BoolVar(&force, "force", false, "Recreate the virtual environment if it already exists")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the step plan without executing")
	c.Flags().BoolVar(&noPush, "no-push", false, "Stop after the commit step")
	c.Flags().StringVar(&initScript, "init-script", "", "Run this script as the init step instead of the built-in template rename")

	return c
}

func printPlan(w io.Writer, plan []domain.StepPlan) {
	for i, s := range plan {
		fmt.Fprintf(w, "%2d. %-16s %s\n", i+1, s.ID, s.Title)
	}
}

func runPlain(ctx context.Context, w io.Writer, uc *usecase.Bootstrap, params usecase.BootstrapParams) (domain.BootstrapRecord, error) {
	uc.Observe(func(e domain.StepEvent) {
		switch e.Phase {
		case domain.PhaseStarted:
			fmt.Fprintf(w, "[%2d/%d] %s ...\n", e.Index, e.Total, e.Title)
		case domain.PhaseFinished:
			if e.Result == nil {
				return
			}
			switch e.Result.Status {
			case domain.StepOK:
				fmt.Fprintf(w, "[%2d/%d] %s ok (%dms)\n", e.Index, e.Total, e.Title, e.Result.DurationMS)
			case domain.StepFailed:
				fmt.Fprintf(w, "[%2d/%d] %s FAILED: %s\n", e.Index, e.Total, e.Title, e.Result.Error)
			case domain.StepSkipped:
				fmt.Fprintf(w, "[%2d/%d] %s skipped\n", e.Index, e.Total, e.Title)
			}
		}
	})

	return uc.Execute(ctx, params)
}

func runWithProgress(ctx context.Context, uc *usecase.Bootstrap, params usecase.BootstrapParams) (domain.BootstrapRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tea.Msg, 8)
	uc.Observe(func(e domain.StepEvent) {
		events <- tui.StepMsg(e)
	})

	go func() {
		rec, err := uc.Execute(ctx, params)
		events <- tui.DoneMsg{Record: rec, Err: err}
		close(events)
	}()

	return tui.Run(tui.Deps{
		Identifier: domain.RepoName(params.Root),
		Plan:       uc.Plan(params),
		Events:     events,
		Cancel:     cancel,
	})
}
