package usecase

import (
	"context"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// SearchResult groups panels matching a query by how they matched.
// A panel can appear in both groups.
type SearchResult struct {
	Query string

	// GeneMatches holds panels containing a gene equal to the query,
	// ignoring case.
	GeneMatches []domain.Snapshot

	// NameMatches holds panels whose slug or title contains the query as a
	// case-insensitive substring.
	NameMatches []domain.Snapshot
}

// Empty reports whether the query matched nothing.
func (r SearchResult) Empty() bool {
	return len(r.GeneMatches) == 0 && len(r.NameMatches) == 0
}

// SearchPanels finds panels by gene symbol or by name.
type SearchPanels struct {
	panels ports.PanelStore
}

func NewSearchPanels(panels ports.PanelStore) *SearchPanels {
	return &SearchPanels{panels: panels}
}

// Execute matches query against every panel under root. Gene matches require
// the whole symbol to equal the query; name matches are substring matches on
// slug or title. A blank query matches nothing.
func (uc *SearchPanels) Execute(ctx context.Context, root, query string) (SearchResult, error) {
	out := SearchResult{Query: strings.TrimSpace(query)}
	q := strings.ToLower(out.Query)
	if q == "" {
		return out, nil
	}

	refs, err := uc.panels.ListPanels(root)
	if err != nil {
		return SearchResult{}, err
	}

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return SearchResult{}, err
		}

		snap, err := uc.panels.LoadPanel(ref.Path)
		if err != nil {
			return SearchResult{}, err
		}

		for _, gene := range snap.Genes {
			if strings.ToLower(gene) == q {
				out.GeneMatches = append(out.GeneMatches, snap)
				break
			}
		}
		if strings.Contains(strings.ToLower(snap.Slug), q) ||
			strings.Contains(strings.ToLower(snap.Title()), q) {
			out.NameMatches = append(out.NameMatches, snap)
		}
	}
	return out, nil
}
