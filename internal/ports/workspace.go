package ports

import "github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
