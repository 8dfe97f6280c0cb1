package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
	"github.com/spf13/cobra"
)

func panelsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "panels",
		Short: "Browse panels in a workspace",
	}

	c.AddCommand(panelsListCmd())
	c.AddCommand(panelsShowCmd())
	c.AddCommand(panelsLogCmd())
	return c
}

func panelsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List panels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			summaries, err := usecase.NewListPanels(ws.panels).Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println("(no panels found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, s := range summaries {
				fmt.Printf("- %s  %s (%d genes)\n", s.Ref.Slug, s.Title, s.Genes)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func panelsShowCmd() *cobra.Command {
	var workspace string
	var ref string

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one panel's metadata and genes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			slug := args[0]

			var snap domain.Snapshot
			if ref == "" {
				snap, err = usecase.NewShowPanel(ws.panels).Execute(cmd.Context(), ws.root, slug)
			} else {
				src, prefix, oerr := openRevisions(ws)
				if oerr != nil {
					return oerr
				}
				uc := usecase.NewShowPanel(ws.panels, usecase.WithRevisionSource(src))
				snap, err = uc.ExecuteAt(cmd.Context(), prefix, slug, ref)
			}
			if err != nil {
				return err
			}

			printSnapshot(os.Stdout, snap, ref)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&ref, "ref", "", "Show the panel as of this git revision")
	return cmd
}

func panelsLogCmd() *cobra.Command {
	var workspace string
	var limit int

	cmd := &cobra.Command{
		Use:   "log <slug>",
		Short: "Show the commit history of one panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			src, prefix, err := openRevisions(ws)
			if err != nil {
				return err
			}

			uc := usecase.NewPanelLog(ws.panels, src)
			commits, err := uc.Execute(cmd.Context(), ws.root, prefix, args[0], limit)
			if err != nil {
				return err
			}

			if len(commits) == 0 {
				fmt.Println("(no history)")
				return nil
			}
			for _, c := range commits {
				fmt.Println(commitLine(c))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of commits (0 = all)")
	return cmd
}

func printSnapshot(w io.Writer, snap domain.Snapshot, ref string) {
	fmt.Fprintf(w, "Title: %s\n", snap.Title())
	fmt.Fprintf(w, "Slug:  %s\n", snap.Slug)
	if ref != "" {
		fmt.Fprintf(w, "Ref:   %s\n", ref)
	}

	if len(snap.Metadata) > 0 {
		fmt.Fprintln(w, "Metadata:")
		for _, e := range snap.Metadata {
			fmt.Fprintf(w, "  - %s: %s\n", e.Key, e.Value)
		}
	}

	fmt.Fprintf(w, "\nGenes (%d):\n", len(snap.Genes))
	for _, g := range snap.Genes {
		fmt.Fprintf(w, "  %s\n", g)
	}
}

// commitLine mirrors `git log --pretty="%h %ad %an %s"`.
func commitLine(c domain.CommitInfo) string {
	return fmt.Sprintf("%s %s %s %s",
		c.ShortHash(), c.When.Format("2006-01-02"), c.Author, c.Subject)
}
