package usecase

import (
	"context"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// PreviewOutcome describes what saving a proposed panel text would do.
type PreviewOutcome struct {
	Ref        domain.PanelRef
	Normalized string
	Result     domain.ValidationResult
	Changes    domain.ChangeSet
}

// PreviewChange validates a proposed panel text and diffs it against the
// panel's current content, without writing anything.
type PreviewChange struct {
	panels     ports.PanelStore
	strictCase bool
}

// PreviewOption customizes a PreviewChange use case.
type PreviewOption func(*PreviewChange)

// PreviewStrictCase escalates case-insensitive duplicate warnings to errors.
func PreviewStrictCase(enabled bool) PreviewOption {
	return func(uc *PreviewChange) {
		uc.strictCase = enabled
	}
}

func NewPreviewChange(panels ports.PanelStore, opts ...PreviewOption) *PreviewChange {
	uc := &PreviewChange{panels: panels}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute normalizes proposed (a trailing newline is added when missing),
// validates it, and diffs its gene list against the panel's current file.
func (uc *PreviewChange) Execute(ctx context.Context, root, slug, proposed string) (PreviewOutcome, error) {
	ref, err := uc.panels.FindPanel(root, slug)
	if err != nil {
		return PreviewOutcome{}, err
	}
	if err := ctx.Err(); err != nil {
		return PreviewOutcome{}, err
	}

	current, err := uc.panels.ReadRaw(ref.Path)
	if err != nil {
		return PreviewOutcome{}, err
	}

	normalized := proposed
	if !strings.HasSuffix(normalized, "\n") {
		normalized += "\n"
	}

	res := domain.ValidatePanel(normalized)
	if uc.strictCase {
		res = escalateCaseIssues(res)
	}

	return PreviewOutcome{
		Ref:        ref,
		Normalized: normalized,
		Result:     res,
		Changes:    domain.DiffGenes(domain.ParseGenes(current), domain.ParseGenes(normalized)),
	}, nil
}
