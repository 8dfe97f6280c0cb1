package usecase

import (
	"context"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// PanelSummary is the one-line view of a panel used by listings.
type PanelSummary struct {
	Ref   domain.PanelRef
	Title string
	Genes int
}

// ListPanels lists all panels under a workspace root with display titles and
// gene counts.
type ListPanels struct {
	panels ports.PanelStore
}

func NewListPanels(panels ports.PanelStore) *ListPanels {
	return &ListPanels{panels: panels}
}

// Execute returns one summary per panel, ordered by slug.
func (uc *ListPanels) Execute(ctx context.Context, root string) ([]PanelSummary, error) {
	refs, err := uc.panels.ListPanels(root)
	if err != nil {
		return nil, err
	}

	out := make([]PanelSummary, 0, len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snap, err := uc.panels.LoadPanel(ref.Path)
		if err != nil {
			return nil, err
		}
		out = append(out, PanelSummary{
			Ref:   ref,
			Title: snap.Title(),
			Genes: len(snap.Genes),
		})
	}
	return out, nil
}
