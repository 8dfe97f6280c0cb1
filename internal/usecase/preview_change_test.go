package usecase

import (
	"context"
	"testing"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestPreviewChange_AppendsMissingNewline(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "BRCA1\n",
	}}

	uc := NewPreviewChange(store)
	got, err := uc.Execute(context.Background(), "/ws", "cardio", "BRCA1\nTP53")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Normalized != "BRCA1\nTP53\n" {
		t.Fatalf("expected trailing newline added, got %q", got.Normalized)
	}
	if !got.Result.OK() {
		t.Fatalf("expected normalized text to validate, got %+v", got.Result)
	}
	want := domain.ChangeSet{Added: []string{"TP53"}}
	if diff := cmp.Diff(want, got.Changes); diff != "" {
		t.Fatalf("change set mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewChange_NoChange(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "# title: Cardio\nBRCA1\nTP53\n",
	}}

	got, err := NewPreviewChange(store).
		Execute(context.Background(), "/ws", "cardio", "# title: Cardio\nBRCA1\nTP53\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Normalized != "# title: Cardio\nBRCA1\nTP53\n" {
		t.Fatalf("expected text untouched, got %q", got.Normalized)
	}
	if !got.Changes.Empty() {
		t.Fatalf("expected empty change set, got %+v", got.Changes)
	}
}

func TestPreviewChange_ReportsValidationIssues(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "BRCA1\n",
	}}

	got, err := NewPreviewChange(store).
		Execute(context.Background(), "/ws", "cardio", "BAD GENE\nBRCA1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result.OK() {
		t.Fatal("expected validation errors")
	}
	if got.Result.Errors[0].Code != domain.IssueFormat {
		t.Fatalf("expected format issue, got %+v", got.Result.Errors[0])
	}
	// The diff is still computed so the caller can show it next to the
	// errors; the offending line counts as a gene until it is fixed.
	want := domain.ChangeSet{Added: []string{"BAD GENE"}}
	if diff := cmp.Diff(want, got.Changes); diff != "" {
		t.Fatalf("change set mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewChange_StrictCase(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "BRCA1\n",
	}}
	proposed := "BRCA1\nbrca1\n"

	relaxed, err := NewPreviewChange(store).Execute(context.Background(), "/ws", "cardio", proposed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !relaxed.Result.OK() || len(relaxed.Result.Warnings) != 1 {
		t.Fatalf("expected advisory warning by default, got %+v", relaxed.Result)
	}

	strict, err := NewPreviewChange(store, PreviewStrictCase(true)).
		Execute(context.Background(), "/ws", "cardio", proposed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict.Result.OK() || len(strict.Result.Errors) != 1 {
		t.Fatalf("expected warning promoted to error, got %+v", strict.Result)
	}
}

func TestPreviewChange_UnknownPanel(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{}}

	_, err := NewPreviewChange(store).Execute(context.Background(), "/ws", "ghost", "BRCA1\n")
	if err == nil {
		t.Fatal("expected error for unknown panel")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
