package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "search <query>",
		Short: "Search panels by gene symbol or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewSearchPanels(ws.panels)
			result, err := uc.Execute(cmd.Context(), ws.root, args[0])
			if err != nil {
				return err
			}

			printSearchResult(os.Stdout, result)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

func printSearchResult(w io.Writer, result usecase.SearchResult) {
	if result.Empty() {
		fmt.Fprintf(w, "No panels match %q.\n", result.Query)
		return
	}

	if len(result.GeneMatches) > 0 {
		fmt.Fprintf(w, "Panels containing gene %q:\n", result.Query)
		for _, snap := range result.GeneMatches {
			fmt.Fprintln(w, searchLine(snap))
		}
	}
	if len(result.NameMatches) > 0 {
		if len(result.GeneMatches) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Panels named like %q:\n", result.Query)
		for _, snap := range result.NameMatches {
			fmt.Fprintln(w, searchLine(snap))
		}
	}
}

func searchLine(snap domain.Snapshot) string {
	return fmt.Sprintf("- %s  %s (%d genes)", snap.Slug, snap.Title(), len(snap.Genes))
}
