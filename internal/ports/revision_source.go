package ports

import "github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"

// RevisionSource fetches panel text and change information at given
// version-control references, so the core never shells out itself.
type RevisionSource interface {
	// TextAt returns the content of path at ref. A file absent at ref
	// yields a KindNotFound error; callers may treat that as empty.
	TextAt(ref, path string) (string, error)

	// ChangedFiles lists paths under pathPrefix that differ between refs.
	ChangedFiles(baseRef, headRef, pathPrefix string) ([]string, error)

	// History returns commits touching path, newest first.
	// limit <= 0 means no limit.
	History(path string, limit int) ([]domain.CommitInfo, error)
}
