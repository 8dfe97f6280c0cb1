package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var strict bool

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate every panel file in the workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			var opts []usecase.ValidateOption
			if strict || ws.cfg.Validation.StrictCase {
				opts = append(opts, usecase.WithStrictCase(true))
			}

			uc := usecase.NewValidatePanels(ws.panels, opts...)
			batch, err := uc.Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			printBatch(os.Stdout, ws.root, batch)
			if !batch.OK() {
				return fmt.Errorf("validation failed (%d error(s))", batch.ErrorCount())
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&strict, "strict", false, "Treat case-insensitive duplicate genes as errors")
	return c
}

// printBatch writes one ERROR/WARNING line per finding, files in listing
// order, then a closing summary.
func printBatch(w io.Writer, root string, batch usecase.BatchResult) {
	for _, report := range batch.Reports {
		rel := relToRoot(root, report.Ref.Path)
		for _, issue := range report.Result.Errors {
			fmt.Fprintf(w, "ERROR: %s\n", issueLine(rel, issue))
		}
		for _, issue := range report.Result.Warnings {
			fmt.Fprintf(w, "WARNING: %s\n", issueLine(rel, issue))
		}
	}

	if batch.OK() {
		if n := batch.WarningCount(); n > 0 {
			fmt.Fprintf(w, "All panels validated successfully (%d warning(s)).\n", n)
			return
		}
		fmt.Fprintln(w, "All panels validated successfully.")
		return
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s) in %d file(s).\n",
		batch.ErrorCount(), batch.WarningCount(), len(batch.Reports))
}

// issueLine renders "path:line: message", dropping the line part for
// file-scoped findings.
func issueLine(path string, issue domain.Issue) string {
	if issue.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", path, issue.Line, issue.Message)
	}
	return fmt.Sprintf("%s: %s", path, issue.Message)
}
