package usecase

import (
	"context"
	"path"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// PanelLog lists the commit history of one panel file.
type PanelLog struct {
	panels    ports.PanelStore
	revisions ports.RevisionSource
}

func NewPanelLog(panels ports.PanelStore, revisions ports.RevisionSource) *PanelLog {
	return &PanelLog{panels: panels, revisions: revisions}
}

// Execute returns the commits touching the panel named slug, newest first.
// The panel must exist in the working tree; panelsPrefix is the
// repository-relative directory holding panel files. limit <= 0 means no
// limit.
func (uc *PanelLog) Execute(ctx context.Context, root, panelsPrefix, slug string, limit int) ([]domain.CommitInfo, error) {
	if _, err := uc.panels.FindPanel(root, slug); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.revisions.History(path.Join(panelsPrefix, slug+".txt"), limit)
}
