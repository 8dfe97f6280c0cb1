package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/fspanels"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/workspacefinder"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadPanels(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return panelsLoadedMsg{root: root, err: err}
		}

		store := fspanels.NewStore(
			fspanels.WithPanelsDir(cfg.Paths.PanelsDir),
		)

		summaries, err := usecase.NewListPanels(store).Execute(context.Background(), root)
		return panelsLoadedMsg{root: root, summaries: summaries, err: err}
	}
}

func cmdLoadPanel(root, slug string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return panelLoadedMsg{slug: slug, err: err}
		}

		store := fspanels.NewStore(
			fspanels.WithPanelsDir(cfg.Paths.PanelsDir),
		)

		ref, err := store.FindPanel(root, slug)
		if err != nil {
			return panelLoadedMsg{slug: slug, err: err}
		}
		text, err := store.ReadRaw(ref.Path)
		if err != nil {
			return panelLoadedMsg{slug: slug, err: err}
		}

		return panelLoadedMsg{
			slug:   slug,
			snap:   domain.ParsePanel(slug, text),
			result: domain.ValidatePanel(text),
		}
	}
}

func cmdValidateWorkspace(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return validateDoneMsg{root: root, err: err}
		}

		store := fspanels.NewStore(
			fspanels.WithPanelsDir(cfg.Paths.PanelsDir),
		)

		var opts []usecase.ValidateOption
		if cfg.Validation.StrictCase {
			opts = append(opts, usecase.WithStrictCase(true))
		}

		batch, err := usecase.NewValidatePanels(store, opts...).Execute(context.Background(), root)
		return validateDoneMsg{root: root, batch: batch, err: err}
	}
}
