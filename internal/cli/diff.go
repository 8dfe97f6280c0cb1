package cli

import (
	"fmt"
	"os"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
	"github.com/spf13/cobra"
)

func diffCmd() *cobra.Command {
	var workspace string
	var save bool

	c := &cobra.Command{
		Use:   "diff <base> <head>",
		Short: "Show gene-level panel changes between two git revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			src, prefix, err := openRevisions(ws)
			if err != nil {
				return err
			}

			var opts []usecase.DiffOption
			if save {
				opts = append(opts, usecase.WithReportStore(ws.reports))
			}

			uc := usecase.NewDiffRefs(src, opts...)
			out, err := uc.Execute(cmd.Context(), args[0], args[1], prefix)
			if err != nil {
				return err
			}

			// Markdown goes to stdout so it can be piped into PR tooling.
			fmt.Print(out.Markdown)
			if out.ReportID != "" {
				fmt.Fprintf(os.Stderr, "saved report %s\n", out.ReportID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&save, "save", false, "Persist the report under reports/")
	return c
}
