package usecase

import (
	"context"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// DiffOutcome is the result of comparing panel files between two revisions.
type DiffOutcome struct {
	// Changes maps repository paths to their gene-level change sets.
	// Files whose gene list did not change (comment-only edits) are absent.
	Changes map[string]domain.ChangeSet

	// Files lists the paths in Changes in ascending order.
	Files []string

	// Markdown is the rendered change report.
	Markdown string

	// ReportID is set when the outcome was persisted to a report store.
	ReportID string
}

// DiffRefs compares the gene lists of all panel files between two revisions
// and renders a change report.
type DiffRefs struct {
	revisions ports.RevisionSource
	reports   ports.ReportStore
}

// DiffOption customizes a DiffRefs use case.
type DiffOption func(*DiffRefs)

// WithReportStore persists each outcome as a report artifact.
func WithReportStore(store ports.ReportStore) DiffOption {
	return func(uc *DiffRefs) {
		uc.reports = store
	}
}

func NewDiffRefs(revisions ports.RevisionSource, opts ...DiffOption) *DiffRefs {
	uc := &DiffRefs{revisions: revisions}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute diffs every panel file under panelsPrefix between baseRef and
// headRef. A file missing on one side contributes an empty gene list, so
// additions and deletions of whole panels come out as plain adds/removes.
func (uc *DiffRefs) Execute(ctx context.Context, baseRef, headRef, panelsPrefix string) (DiffOutcome, error) {
	changed, err := uc.revisions.ChangedFiles(baseRef, headRef, panelsPrefix)
	if err != nil {
		return DiffOutcome{}, err
	}

	changes := make(map[string]domain.ChangeSet)
	var files []string
	for _, file := range changed {
		if err := ctx.Err(); err != nil {
			return DiffOutcome{}, err
		}
		if !strings.HasSuffix(file, ".txt") {
			continue
		}

		baseGenes, err := uc.genesAt(baseRef, file)
		if err != nil {
			return DiffOutcome{}, err
		}
		headGenes, err := uc.genesAt(headRef, file)
		if err != nil {
			return DiffOutcome{}, err
		}

		cs := domain.DiffGenes(baseGenes, headGenes)
		if cs.Empty() {
			continue
		}
		changes[file] = cs
		files = append(files, file)
	}

	out := DiffOutcome{
		Changes:  changes,
		Files:    files,
		Markdown: domain.RenderChangeReport(changes),
	}

	if uc.reports != nil {
		id, err := uc.reports.SaveReport(domain.ReportArtifact{
			BaseRef:  baseRef,
			HeadRef:  headRef,
			Files:    files,
			Markdown: out.Markdown,
		})
		if err != nil {
			return out, err
		}
		out.ReportID = id
	}
	return out, nil
}

// genesAt reads the gene list of one file at one revision. A file absent at
// that revision yields an empty list.
func (uc *DiffRefs) genesAt(ref, path string) ([]string, error) {
	text, err := uc.revisions.TextAt(ref, path)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return domain.ParseGenes(text), nil
}
