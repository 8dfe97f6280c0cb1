package domain

import (
	"fmt"
	"sort"
	"strings"
)

// IssueCode classifies a single validation finding.
type IssueCode string

const (
	IssueFormat        IssueCode = "format"
	IssueOrder         IssueCode = "order"
	IssueDuplicate     IssueCode = "duplicate"
	IssueCaseDuplicate IssueCode = "case_duplicate"
)

// Issue is one validation finding. Line is 1-based; zero marks a file-scoped
// finding such as a missing trailing newline.
type Issue struct {
	Code    IssueCode
	Line    int
	Token   string
	Message string
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("line %d: %s", i.Line, i.Message)
	}
	return i.Message
}

// ValidationResult accumulates every finding for one panel text.
// Warnings are advisory and never affect OK on their own.
type ValidationResult struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether validation finished with zero errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// ValidatePanel checks raw panel text against the canonical formatting rules,
// accumulating every finding instead of stopping at the first:
//
//   - non-empty content must end with a trailing newline
//   - gene tokens must not contain spaces or tabs
//   - no gene may repeat with identical case
//   - genes repeating under case folding draw a warning
//   - the gene list must equal its own case-insensitive stable sort
//
// A line flagged for whitespace is excluded from the duplicate and ordering
// checks so one malformed line does not cascade.
func ValidatePanel(text string) ValidationResult {
	text = strings.TrimPrefix(text, "\uFEFF")

	var res ValidationResult

	if text != "" && !strings.HasSuffix(text, "\n") {
		res.Errors = append(res.Errors, Issue{
			Code:    IssueFormat,
			Message: "file must end with a newline",
		})
	}

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	type occurrence struct {
		token string
		line  int
	}

	var genes []string
	firstExact := make(map[string]int)
	firstFold := make(map[string]occurrence)

	for num, raw := range lines {
		lineNo := num + 1
		token := strings.TrimSpace(raw)
		if token == "" || strings.HasPrefix(token, "#") {
			continue
		}

		if strings.ContainsAny(token, " \t") {
			res.Errors = append(res.Errors, Issue{
				Code:    IssueFormat,
				Line:    lineNo,
				Token:   token,
				Message: fmt.Sprintf("invalid entry %q (contains whitespace)", token),
			})
			continue
		}

		if first, dup := firstExact[token]; dup {
			res.Errors = append(res.Errors, Issue{
				Code:    IssueDuplicate,
				Line:    lineNo,
				Token:   token,
				Message: fmt.Sprintf("duplicate gene %q (first occurrence at line %d)", token, first),
			})
		} else {
			firstExact[token] = lineNo

			fold := strings.ToLower(token)
			if first, near := firstFold[fold]; near {
				res.Warnings = append(res.Warnings, Issue{
					Code:    IssueCaseDuplicate,
					Line:    lineNo,
					Token:   token,
					Message: fmt.Sprintf("gene %q differs only in case from %q at line %d", token, first.token, first.line),
				})
			} else {
				firstFold[fold] = occurrence{token: token, line: lineNo}
			}
		}

		genes = append(genes, token)
	}

	ordered := make([]string, len(genes))
	copy(ordered, genes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i]) < strings.ToLower(ordered[j])
	})
	for i := range genes {
		if genes[i] != ordered[i] {
			res.Errors = append(res.Errors, Issue{
				Code:    IssueOrder,
				Message: "genes must be sorted alphabetically (case-insensitive)",
			})
			break
		}
	}

	return res
}
