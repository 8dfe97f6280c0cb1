package tui

import (
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type panelsLoadedMsg struct {
	root      string
	summaries []usecase.PanelSummary
	err       error
}

type panelLoadedMsg struct {
	slug   string
	snap   domain.Snapshot
	result domain.ValidationResult
	err    error
}

type validateDoneMsg struct {
	root  string
	batch usecase.BatchResult
	err   error
}
