package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffGenes_AddedAndRemoved(t *testing.T) {
	base := []string{"ALPHA", "BETA"}
	head := []string{"ALPHA", "GAMMA"}

	got := DiffGenes(base, head)

	want := ChangeSet{Added: []string{"GAMMA"}, Removed: []string{"BETA"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffGenes_Identity(t *testing.T) {
	genes := []string{"BRCA1", "TP53", "KCNQ1"}
	got := DiffGenes(genes, genes)

	if !got.Empty() {
		t.Fatalf("expected empty change set, got %+v", got)
	}
}

func TestDiffGenes_Symmetry(t *testing.T) {
	base := []string{"A", "B", "C"}
	head := []string{"B", "C", "D", "E"}

	fwd := DiffGenes(base, head)
	rev := DiffGenes(head, base)

	if diff := cmp.Diff(fwd.Added, rev.Removed); diff != "" {
		t.Fatalf("added/removed not symmetric (-fwd +rev):\n%s", diff)
	}
	if diff := cmp.Diff(fwd.Removed, rev.Added); diff != "" {
		t.Fatalf("removed/added not symmetric (-fwd +rev):\n%s", diff)
	}
}

func TestDiffGenes_OutputSorted(t *testing.T) {
	base := []string{}
	head := []string{"ZZZ", "AAA", "MMM"}

	got := DiffGenes(base, head)

	if diff := cmp.Diff([]string{"AAA", "MMM", "ZZZ"}, got.Added); diff != "" {
		t.Fatalf("expected sorted output (-want +got):\n%s", diff)
	}
}

func TestDiffGenes_CaseSensitive(t *testing.T) {
	got := DiffGenes([]string{"TP53"}, []string{"tp53"})

	want := ChangeSet{Added: []string{"tp53"}, Removed: []string{"TP53"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected case-sensitive comparison (-want +got):\n%s", diff)
	}
}

func TestDiffGenes_NewAndDeletedFiles(t *testing.T) {
	// A file only present at head attributes all genes to Added.
	added := DiffGenes(nil, []string{"A", "B"})
	if len(added.Added) != 2 || len(added.Removed) != 0 {
		t.Fatalf("expected all genes added, got %+v", added)
	}

	// A file only present at base attributes all genes to Removed.
	removed := DiffGenes([]string{"A", "B"}, nil)
	if len(removed.Removed) != 2 || len(removed.Added) != 0 {
		t.Fatalf("expected all genes removed, got %+v", removed)
	}
}

func TestDiffGenes_DuplicateInputsCollapse(t *testing.T) {
	got := DiffGenes([]string{"A", "A"}, []string{"A", "B", "B"})

	want := ChangeSet{Added: []string{"B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected set semantics (-want +got):\n%s", diff)
	}
}
