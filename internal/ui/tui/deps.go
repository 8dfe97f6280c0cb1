package tui

import (
	"log/slog"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
