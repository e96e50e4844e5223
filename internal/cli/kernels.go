package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/execrunner"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/jupyter"
	"github.com/sruddy1/ir-pipeline-template/internal/infra/projectfinder"
)

func kernelsCmd() *cobra.Command {
	var binary string

	c := &cobra.Command{
		Use:   "kernels",
		Short: "List installed Jupyter kernelspecs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := jupyter.NewCatalog(execrunner.New(), jupyter.WithBinary(binary))
			specs, err := catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			// Best effort: mark the kernel belonging to the surrounding
			// project, when run from inside one.
			var projectKernel string
			if wd, err := os.Getwd(); err == nil {
				if root, err := projectfinder.NewFinder().FindRoot(wd); err == nil {
					projectKernel = strings.ToLower(domain.RepoName(root))
				}
			}

			if len(specs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No kernelspecs installed.")
				return nil
			}

			for _, ks := range specs {
				marker := " "
				if projectKernel != "" && strings.EqualFold(ks.Name, projectKernel) {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s %-24s %s\n", marker, ks.Name, ks.DisplayName, ks.ResourceDir)
			}
			return nil
		},
	}

	c.Flags().StringVar(&binary, "jupyter", "jupyter", "Jupyter executable to query")
	return c
}
