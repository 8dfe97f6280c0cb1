package fspanels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// panelExt is the only file extension recognized as a panel.
const panelExt = ".txt"

type Store struct {
	panelsDir string
}

func NewStore(opts ...Option) *Store {
	s := &Store{panelsDir: "panels"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Option func(*Store)

func WithPanelsDir(dir string) Option {
	return func(s *Store) { s.panelsDir = dir }
}

var _ ports.PanelStore = (*Store)(nil)

func (s *Store) ReadRaw(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "fspanels.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return string(b), nil
}

func (s *Store) LoadPanel(path string) (domain.Snapshot, error) {
	text, err := s.ReadRaw(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.ParsePanel(SlugFromPath(path), text), nil
}

func (s *Store) ListPanels(root string) ([]domain.PanelRef, error) {
	dir := filepath.Join(root, s.panelsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fspanels.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PanelRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, panelExt) {
			continue
		}

		refs = append(refs, domain.PanelRef{
			Slug: strings.TrimSuffix(name, panelExt),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Slug < refs[j].Slug })
	return refs, nil
}

func (s *Store) FindPanel(root, slug string) (domain.PanelRef, error) {
	if !domain.IsValidSlug(slug) {
		return domain.PanelRef{}, &domain.OpError{
			Op:   "fspanels.find",
			Kind: domain.KindNotFound,
			Path: slug,
			Err:  fmt.Errorf("invalid panel slug %q", slug),
		}
	}

	path := filepath.Join(root, s.panelsDir, slug+panelExt)
	if _, err := os.Stat(path); err != nil {
		return domain.PanelRef{}, &domain.OpError{
			Op:   "fspanels.find",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return domain.PanelRef{Slug: slug, Path: path}, nil
}

// SlugFromPath derives the panel slug from a file path.
func SlugFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), panelExt)
}
