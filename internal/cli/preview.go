package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	var workspace string
	var file string
	var strict bool

	c := &cobra.Command{
		Use:   "preview <slug>",
		Short: "Validate a proposed panel text and show what saving it would change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			proposed, err := readProposed(file)
			if err != nil {
				return err
			}

			var opts []usecase.PreviewOption
			if strict || ws.cfg.Validation.StrictCase {
				opts = append(opts, usecase.PreviewStrictCase(true))
			}

			uc := usecase.NewPreviewChange(ws.panels, opts...)
			out, err := uc.Execute(cmd.Context(), ws.root, args[0], proposed)
			if err != nil {
				return err
			}

			printPreview(os.Stdout, ws.root, out)
			if !out.Result.OK() {
				return fmt.Errorf("preview has %d error(s); save would be rejected", len(out.Result.Errors))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "File with the proposed panel text ('-' for stdin)")
	c.Flags().BoolVar(&strict, "strict", false, "Treat case-insensitive duplicate genes as errors")

	_ = c.MarkFlagRequired("file")
	return c
}

func readProposed(file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read proposed text: %w", err)
	}
	return string(data), nil
}

func printPreview(w io.Writer, root string, out usecase.PreviewOutcome) {
	rel := relToRoot(root, out.Ref.Path)
	fmt.Fprintf(w, "Preview for %s (%s):\n", out.Ref.Slug, rel)

	for _, issue := range out.Result.Errors {
		fmt.Fprintf(w, "ERROR: %s\n", issueLine(rel, issue))
	}
	for _, issue := range out.Result.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", issueLine(rel, issue))
	}

	fmt.Fprintln(w)
	if out.Changes.Empty() {
		fmt.Fprintln(w, "No gene changes.")
		return
	}
	if len(out.Changes.Added) > 0 {
		fmt.Fprintf(w, "Added: %s\n", strings.Join(out.Changes.Added, ", "))
	}
	if len(out.Changes.Removed) > 0 {
		fmt.Fprintf(w, "Removed: %s\n", strings.Join(out.Changes.Removed, ", "))
	}
}
