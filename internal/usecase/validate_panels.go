package usecase

import (
	"context"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// PanelReport couples one panel file with its validation outcome.
type PanelReport struct {
	Ref    domain.PanelRef
	Result domain.ValidationResult
}

// BatchResult aggregates validation outcomes across a whole workspace.
type BatchResult struct {
	Reports []PanelReport
}

// OK reports whether every panel validated without errors.
func (b BatchResult) OK() bool {
	for _, r := range b.Reports {
		if !r.Result.OK() {
			return false
		}
	}
	return true
}

// ErrorCount returns the total number of errors across all panels.
func (b BatchResult) ErrorCount() int {
	n := 0
	for _, r := range b.Reports {
		n += len(r.Result.Errors)
	}
	return n
}

// WarningCount returns the total number of warnings across all panels.
func (b BatchResult) WarningCount() int {
	n := 0
	for _, r := range b.Reports {
		n += len(r.Result.Warnings)
	}
	return n
}

// ValidatePanels checks every panel file under a workspace root against the
// panel format rules.
type ValidatePanels struct {
	panels     ports.PanelStore
	strictCase bool
}

// ValidateOption customizes a ValidatePanels use case.
type ValidateOption func(*ValidatePanels)

// WithStrictCase escalates case-insensitive duplicate warnings to errors.
func WithStrictCase(enabled bool) ValidateOption {
	return func(uc *ValidatePanels) {
		uc.strictCase = enabled
	}
}

func NewValidatePanels(panels ports.PanelStore, opts ...ValidateOption) *ValidatePanels {
	uc := &ValidatePanels{panels: panels}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates every panel under root. Findings in one file never stop
// the remaining files from being checked; only I/O failures abort the batch.
func (uc *ValidatePanels) Execute(ctx context.Context, root string) (BatchResult, error) {
	refs, err := uc.panels.ListPanels(root)
	if err != nil {
		return BatchResult{}, err
	}

	out := BatchResult{Reports: make([]PanelReport, 0, len(refs))}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, err
		}

		text, err := uc.panels.ReadRaw(ref.Path)
		if err != nil {
			return BatchResult{}, err
		}

		res := domain.ValidatePanel(text)
		if uc.strictCase {
			res = escalateCaseIssues(res)
		}
		out.Reports = append(out.Reports, PanelReport{Ref: ref, Result: res})
	}
	return out, nil
}

// escalateCaseIssues promotes case-insensitive duplicate warnings to errors.
func escalateCaseIssues(res domain.ValidationResult) domain.ValidationResult {
	out := domain.ValidationResult{Errors: res.Errors}
	for _, w := range res.Warnings {
		if w.Code == domain.IssueCaseDuplicate {
			out.Errors = append(out.Errors, w)
			continue
		}
		out.Warnings = append(out.Warnings, w)
	}
	return out
}
