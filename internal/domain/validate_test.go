package domain

import (
	"strings"
	"testing"
)

// --- happy path ---

func TestValidatePanel_CleanFile(t *testing.T) {
	text := "# title: Demo\n\nalpha\nBETA\nGamma\n"
	res := ValidatePanel(text)

	if !res.OK() {
		t.Fatalf("expected OK, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got: %v", res.Warnings)
	}
}

func TestValidatePanel_EmptyText(t *testing.T) {
	res := ValidatePanel("")
	if !res.OK() || len(res.Warnings) != 0 {
		t.Fatalf("expected empty text to validate clean, got %+v", res)
	}
}

// --- trailing newline ---

func TestValidatePanel_MissingTrailingNewline(t *testing.T) {
	res := ValidatePanel("BRCA1")

	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got: %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Code != IssueFormat || e.Line != 0 {
		t.Fatalf("expected file-scoped format error, got %+v", e)
	}
	if e.Message != "file must end with a newline" {
		t.Fatalf("unexpected message %q", e.Message)
	}
}

// --- whitespace in token ---

func TestValidatePanel_WhitespaceInToken(t *testing.T) {
	text := "# header\n\nBRCA1\nBAD GENE\nTP53\n"
	res := ValidatePanel(text)

	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got: %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Code != IssueFormat {
		t.Fatalf("expected format error, got %+v", e)
	}
	if e.Line != 4 {
		t.Fatalf("expected line 4 (blanks and comments count), got %d", e.Line)
	}
	if e.Token != "BAD GENE" {
		t.Fatalf("expected offending token recorded, got %q", e.Token)
	}
}

func TestValidatePanel_TabInToken(t *testing.T) {
	res := ValidatePanel("A\tB\n")
	if len(res.Errors) != 1 || res.Errors[0].Code != IssueFormat {
		t.Fatalf("expected one format error for tab, got: %v", res.Errors)
	}
}

func TestValidatePanel_FlaggedLineExcludedFromOtherChecks(t *testing.T) {
	// The whitespace line sits out of order; once flagged it must not
	// also trigger an ordering error.
	text := "BRCA1\nZZ Z\nTP53\n"
	res := ValidatePanel(text)

	if len(res.Errors) != 1 {
		t.Fatalf("expected only the whitespace error, got: %v", res.Errors)
	}
}

// --- duplicates ---

func TestValidatePanel_ExactDuplicate(t *testing.T) {
	text := "BRCA1\nBRCA1\n"
	res := ValidatePanel(text)

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got: %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Code != IssueDuplicate || e.Line != 2 {
		t.Fatalf("expected duplicate error on line 2, got %+v", e)
	}
	if !strings.Contains(e.Message, "line 1") {
		t.Fatalf("expected message to cite first occurrence, got %q", e.Message)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("exact duplicate must not also warn, got: %v", res.Warnings)
	}
}

func TestValidatePanel_CaseDuplicateWarns(t *testing.T) {
	text := "TP53\ntp53\n"
	res := ValidatePanel(text)

	if !res.OK() {
		t.Fatalf("case duplicate must stay advisory, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning, got: %v", res.Warnings)
	}
	w := res.Warnings[0]
	if w.Code != IssueCaseDuplicate || w.Line != 2 {
		t.Fatalf("expected case-duplicate warning on line 2, got %+v", w)
	}
	if !strings.Contains(w.Message, `"TP53"`) || !strings.Contains(w.Message, "line 1") {
		t.Fatalf("expected message to cite prior token and line, got %q", w.Message)
	}
}

// --- ordering ---

func TestValidatePanel_UnsortedGenes(t *testing.T) {
	text := "beta\nALPHA\n"
	res := ValidatePanel(text)

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got: %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Code != IssueOrder || e.Line != 0 {
		t.Fatalf("expected file-scoped order error, got %+v", e)
	}
}

func TestValidatePanel_CaseInsensitiveOrderAccepted(t *testing.T) {
	res := ValidatePanel("alpha\nBETA\nGamma\n")
	if !res.OK() {
		t.Fatalf("expected mixed-case sorted list to pass, got: %v", res.Errors)
	}
}

func TestValidatePanel_DuplicatesDoNotBreakOrdering(t *testing.T) {
	res := ValidatePanel("TP53\nTP53\n")

	for _, e := range res.Errors {
		if e.Code == IssueOrder {
			t.Fatalf("stable sort must keep equal keys in place, got order error")
		}
	}
}

// --- accumulation ---

func TestValidatePanel_AccumulatesEverything(t *testing.T) {
	text := "ZZZ\nAAA\nAAA\nBAD GENE\nzzz"
	res := ValidatePanel(text)

	counts := map[IssueCode]int{}
	for _, e := range res.Errors {
		counts[e.Code]++
	}
	if counts[IssueFormat] != 2 {
		t.Fatalf("expected newline and whitespace errors, got: %v", res.Errors)
	}
	if counts[IssueDuplicate] != 1 {
		t.Fatalf("expected one duplicate error, got: %v", res.Errors)
	}
	if counts[IssueOrder] != 1 {
		t.Fatalf("expected one order error, got: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one case warning, got: %v", res.Warnings)
	}
}

// --- BOM ---

func TestValidatePanel_BOMIgnored(t *testing.T) {
	res := ValidatePanel("\uFEFFBRCA1\n")
	if !res.OK() {
		t.Fatalf("expected BOM to be stripped before checks, got: %v", res.Errors)
	}
}

// --- Issue formatting ---

func TestIssueString(t *testing.T) {
	withLine := Issue{Line: 3, Message: "boom"}
	if got := withLine.String(); got != "line 3: boom" {
		t.Fatalf("expected line-scoped format, got %q", got)
	}
	fileScoped := Issue{Message: "boom"}
	if got := fileScoped.String(); got != "boom" {
		t.Fatalf("expected bare message, got %q", got)
	}
}
