package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListPanels_SummariesOrderedBySlug(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{
		"hearing_loss": "GJB2\nMYO7A\n",
		"cardio":       "# title: Cardiomyopathy Core\nBRCA1\nMYH7\nTP53\n",
	}}

	got, err := NewListPanels(store).Execute(context.Background(), "/ws")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []PanelSummary{
		{Ref: refFor("cardio"), Title: "Cardiomyopathy Core", Genes: 3},
		{Ref: refFor("hearing_loss"), Title: "Hearing Loss", Genes: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestListPanels_EmptyWorkspace(t *testing.T) {
	store := fakePanelStore{panels: map[string]string{}}

	got, err := NewListPanels(store).Execute(context.Background(), "/ws")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no summaries, got %+v", got)
	}
}

func TestListPanels_ListError(t *testing.T) {
	listErr := errors.New("disk gone")

	_, err := NewListPanels(errPanelStore{err: listErr}).Execute(context.Background(), "/ws")
	if err == nil {
		t.Fatal("expected error listing panels")
	}
	if !errors.Is(err, listErr) {
		t.Fatalf("expected wrapped listErr, got %v", err)
	}
}
