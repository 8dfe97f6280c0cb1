package ports

import "github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"

// ReportStore persists change reports for later review.
type ReportStore interface {
	SaveReport(report domain.ReportArtifact) (id string, err error)
	// ListReports can be added later (MVP: optional).
}
