package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/logger"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/template"
	"github.com/sruddy1/ir-pipeline-template/internal/usecase"
)

func renameCmd(debug *bool) *cobra.Command {
	var project string

	c := &cobra.Command{
		Use:   "rename",
		Short: "Rewrite the template in place to carry this repository's name",
		Long: `Rename the placeholder package under src/ to the normalized repository
name and update pyproject.toml and mkdocs.yml to match. This is the same
work the init step of "repoinit up" performs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveProjectRoot(project)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: *debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewRenameTemplate(template.NewInitializer())
			if err := uc.Execute(cmd.Context(), root); err != nil {
				return err
			}

			name := domain.RepoName(root)
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed template package to %q (site %q)\n",
				domain.NormalizePackageName(name), name)
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	return c
}
