package usecase

import (
	"context"
	"testing"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestShowPanel_WorkingTree(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "# title: Cardio\n# version: 2\nBRCA1\nTP53\n",
	}}

	got, err := NewShowPanel(store).Execute(context.Background(), "/ws", "cardio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Snapshot{
		Slug: "cardio",
		Metadata: domain.Metadata{
			{Key: "title", Value: "Cardio"},
			{Key: "version", Value: "2"},
		},
		Genes: []string{"BRCA1", "TP53"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestShowPanel_UnknownSlug(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{}}

	_, err := NewShowPanel(store).Execute(context.Background(), "/ws", "ghost")
	if err == nil {
		t.Fatal("expected error for unknown panel")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestShowPanel_AtRevision(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"cardio": "BRCA1\nMYH7\nTP53\n",
	}}
	src := fakeRevisionSource{
		files: map[string]map[string]string{
			"v1": {"panels/cardio.txt": "BRCA1\nTP53\n"},
		},
	}

	uc := NewShowPanel(store, WithRevisionSource(src))
	got, err := uc.ExecuteAt(context.Background(), "panels", "cardio", "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Slug != "cardio" {
		t.Fatalf("expected slug cardio, got %q", got.Slug)
	}
	if diff := cmp.Diff([]string{"BRCA1", "TP53"}, got.Genes); diff != "" {
		t.Fatalf("genes mismatch (-want +got):\n%s", diff)
	}
}

func TestShowPanel_AtRevision_NoSourceConfigured(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{"cardio": "BRCA1\n"}}

	_, err := NewShowPanel(store).ExecuteAt(context.Background(), "panels", "cardio", "v1")
	if err == nil {
		t.Fatal("expected error without a revision source")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestShowPanel_AtRevision_InvalidSlug(t *testing.T) {
	src := fakeRevisionSource{files: map[string]map[string]string{"v1": {}}}

	_, err := NewShowPanel(fakePanelStore{}, WithRevisionSource(src)).
		ExecuteAt(context.Background(), "panels", "../escape", "v1")
	if err == nil {
		t.Fatal("expected error for invalid slug")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestShowPanel_AtRevision_MissingAtRef(t *testing.T) {
	src := fakeRevisionSource{files: map[string]map[string]string{"v1": {}}}

	_, err := NewShowPanel(fakePanelStore{}, WithRevisionSource(src)).
		ExecuteAt(context.Background(), "panels", "cardio", "v1")
	if err == nil {
		t.Fatal("expected error for panel absent at ref")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
