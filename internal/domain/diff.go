package domain

import "sort"

// ChangeSet captures the gene-level difference between two panel revisions.
type ChangeSet struct {
	Added   []string
	Removed []string
}

// Empty reports whether the change set carries no additions or removals.
func (c ChangeSet) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// DiffGenes compares two gene lists as case-sensitive sets: Added holds genes
// present only in head, Removed genes present only in base. Both slices are
// sorted ascending explicitly so the result is deterministic regardless of
// input order.
func DiffGenes(base, head []string) ChangeSet {
	baseSet := geneSet(base)
	headSet := geneSet(head)

	var cs ChangeSet
	for g := range headSet {
		if _, ok := baseSet[g]; !ok {
			cs.Added = append(cs.Added, g)
		}
	}
	for g := range baseSet {
		if _, ok := headSet[g]; !ok {
			cs.Removed = append(cs.Removed, g)
		}
	}

	sort.Strings(cs.Added)
	sort.Strings(cs.Removed)
	return cs
}

func geneSet(genes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genes))
	for _, g := range genes {
		set[g] = struct{}{}
	}
	return set
}
