package ports

import "github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"

// PanelStore loads gene panels from a source (e.g., filesystem).
type PanelStore interface {
	// ReadRaw returns the exact text of one panel file, BOM and all.
	ReadRaw(path string) (string, error)
	LoadPanel(path string) (domain.Snapshot, error)
	ListPanels(root string) ([]domain.PanelRef, error)
	FindPanel(root, slug string) (domain.PanelRef, error)
}
