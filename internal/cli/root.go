package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sruddy1/ir-pipeline-template/internal/buildinfo"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/projectfinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "repoinit",
		Short:        "repoinit — bootstrap a freshly cloned project template",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .repoinit/logs/repoinit.log")

	cmd.AddCommand(
		upCmd(&debug),
		renameCmd(&debug),
		kernelsCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// resolveProjectRoot honors an explicit --project flag, otherwise walks up
// from the working directory to the nearest pyproject.toml.
func resolveProjectRoot(projectFlag string) (string, error) {
	p := strings.TrimSpace(projectFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := projectfinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("project not found from %q (tip: run from a clone of the template): %w", wd, err)
	}
	return root, nil
}
