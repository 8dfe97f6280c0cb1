package usecase

import (
	"context"
	"fmt"
	"path"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// ShowPanel loads a single panel, either from the working tree or from a
// named revision.
type ShowPanel struct {
	panels    ports.PanelStore
	revisions ports.RevisionSource
}

// ShowOption customizes a ShowPanel use case.
type ShowOption func(*ShowPanel)

// WithRevisionSource enables loading panels at historical revisions.
func WithRevisionSource(revisions ports.RevisionSource) ShowOption {
	return func(uc *ShowPanel) {
		uc.revisions = revisions
	}
}

func NewShowPanel(panels ports.PanelStore, opts ...ShowOption) *ShowPanel {
	uc := &ShowPanel{panels: panels}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the panel named slug from the working tree under root.
func (uc *ShowPanel) Execute(ctx context.Context, root, slug string) (domain.Snapshot, error) {
	ref, err := uc.panels.FindPanel(root, slug)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	return uc.panels.LoadPanel(ref.Path)
}

// ExecuteAt loads the panel named slug as it was at revision rev.
// panelsPrefix is the repository-relative directory holding panel files.
func (uc *ShowPanel) ExecuteAt(ctx context.Context, panelsPrefix, slug, rev string) (domain.Snapshot, error) {
	if uc.revisions == nil {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "usecase.show_panel",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("no revision source configured"),
		}
	}
	if !domain.IsValidSlug(slug) {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "usecase.show_panel",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("invalid panel slug %q", slug),
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	text, err := uc.revisions.TextAt(rev, path.Join(panelsPrefix, slug+".txt"))
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.ParsePanel(slug, text), nil
}
