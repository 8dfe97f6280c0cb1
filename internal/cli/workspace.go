package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/fspanels"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/gitsource"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/reportstore"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/infra/workspacefinder"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	panels  ports.PanelStore
	reports ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	store := fspanels.NewStore(
		fspanels.WithPanelsDir(cfg.Paths.PanelsDir),
	)

	reports := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		panels:  store,
		reports: reports,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `panelapp init`): %w", wd, err)
	}
	return root, nil
}

// openRevisions opens the git repository holding the workspace and computes
// the repo-relative prefix of the panels directory, which may differ from
// the configured dir name when the workspace sits below the repo root.
func openRevisions(ws *workspaceCtx) (*gitsource.Source, string, error) {
	src, err := gitsource.Open(ws.root)
	if err != nil {
		return nil, "", err
	}

	prefix, err := src.RelPath(filepath.Join(ws.root, ws.cfg.Paths.PanelsDir))
	if err != nil {
		return nil, "", err
	}
	return src, prefix, nil
}

// relToRoot renders a panel path relative to the workspace root for display.
func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
