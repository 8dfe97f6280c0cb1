package domain

import (
	"sort"
	"strings"
	"time"
)

// NoChangesMessage is the canonical text for a report with no gene changes.
const NoChangesMessage = "No gene changes detected."

// RenderChangeReport formats per-file change sets as a Markdown summary.
//
// Sections are emitted in ascending file order; files with empty change sets
// are skipped. Exactly one blank line separates sections and the result ends
// with a single trailing newline. When nothing changed, the canonical
// no-change message is returned instead of an empty string.
func RenderChangeReport(changes map[string]ChangeSet) string {
	files := make([]string, 0, len(changes))
	for f := range changes {
		files = append(files, f)
	}
	sort.Strings(files)

	var lines []string
	for _, f := range files {
		cs := changes[f]
		if cs.Empty() {
			continue
		}
		lines = append(lines, "## "+f)
		if len(cs.Added) > 0 {
			lines = append(lines, "Added: "+strings.Join(cs.Added, ", "))
		}
		if len(cs.Removed) > 0 {
			lines = append(lines, "Removed: "+strings.Join(cs.Removed, ", "))
		}
		lines = append(lines, "")
	}

	if len(lines) == 0 {
		return NoChangesMessage + "\n"
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// ReportArtifact represents a persisted change report for later review.
type ReportArtifact struct {
	ID string

	BaseRef string
	HeadRef string

	CreatedAt time.Time

	// Files lists the panel files covered by the report, ascending.
	Files []string

	Markdown string
}
