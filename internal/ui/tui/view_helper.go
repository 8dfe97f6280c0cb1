package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderPanelDetails(snap domain.Snapshot, result domain.ValidationResult) string {
	var b strings.Builder

	b.WriteString(snap.Title())
	b.WriteString("\n")
	b.WriteString(snap.Slug)
	b.WriteString("\n\n")

	if len(snap.Metadata) > 0 {
		b.WriteString("Metadata:\n")
		for _, e := range snap.Metadata {
			b.WriteString("  - ")
			b.WriteString(e.Key)
			b.WriteString(": ")
			b.WriteString(e.Value)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Genes (%d):\n", len(snap.Genes)))
	for _, g := range snap.Genes {
		b.WriteString("  ")
		b.WriteString(g)
		b.WriteString("\n")
	}

	if findings := renderFindings(result); findings != "" {
		b.WriteString("\n")
		b.WriteString(findings)
	}

	return b.String()
}

func renderFindings(result domain.ValidationResult) string {
	if result.OK() && len(result.Warnings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Findings:\n")
	for _, issue := range result.Errors {
		b.WriteString("  ✗ ")
		b.WriteString(issue.String())
		b.WriteString("\n")
	}
	for _, issue := range result.Warnings {
		b.WriteString("  ! ")
		b.WriteString(issue.String())
		b.WriteString("\n")
	}
	return b.String()
}

func renderBatch(root string, batch usecase.BatchResult) string {
	var b strings.Builder

	for _, report := range batch.Reports {
		rel, err := filepath.Rel(root, report.Ref.Path)
		if err != nil {
			rel = report.Ref.Path
		}

		mark := "✓"
		if !report.Result.OK() {
			mark = "✗"
		}
		b.WriteString(mark)
		b.WriteString(" ")
		b.WriteString(filepath.ToSlash(rel))
		b.WriteString("\n")

		for _, issue := range report.Result.Errors {
			b.WriteString("    ERROR: ")
			b.WriteString(issue.String())
			b.WriteString("\n")
		}
		for _, issue := range report.Result.Warnings {
			b.WriteString("    WARNING: ")
			b.WriteString(issue.String())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if batch.OK() {
		b.WriteString("All panels validated successfully.")
	} else {
		b.WriteString(fmt.Sprintf("%d error(s), %d warning(s).", batch.ErrorCount(), batch.WarningCount()))
	}
	return b.String()
}
