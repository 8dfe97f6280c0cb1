package gitsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"github.com/ITour-BioInfo/PanelAppByIvan/internal/ports"
)

// Source reads panel text and change information from a local git repository,
// replacing any need to shell out to the git binary.
type Source struct {
	repo *git.Repository
}

// Open locates the repository containing dir (searching upward for .git).
func Open(dir string) (*Source, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.open",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}
	return &Source{repo: repo}, nil
}

// NewSource wraps an already-opened repository.
func NewSource(repo *git.Repository) *Source {
	return &Source{repo: repo}
}

var _ ports.RevisionSource = (*Source)(nil)

func (s *Source) TextAt(ref, path string) (string, error) {
	commit, err := s.commitAt(ref)
	if err != nil {
		return "", err
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", &domain.OpError{
			Op:   "gitsource.textat",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	f, err := tree.File(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, object.ErrFileNotFound) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{
			Op:   "gitsource.textat",
			Kind: kind,
			Path: fmt.Sprintf("%s:%s", ref, path),
			Err:  err,
		}
	}

	text, err := f.Contents()
	if err != nil {
		return "", &domain.OpError{
			Op:   "gitsource.textat",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return text, nil
}

func (s *Source) ChangedFiles(baseRef, headRef, pathPrefix string) ([]string, error) {
	baseBlobs, err := s.blobsAt(baseRef, pathPrefix)
	if err != nil {
		return nil, err
	}
	headBlobs, err := s.blobsAt(headRef, pathPrefix)
	if err != nil {
		return nil, err
	}

	changed := make(map[string]struct{})
	for name, h := range headBlobs {
		if bh, ok := baseBlobs[name]; !ok || bh != h {
			changed[name] = struct{}{}
		}
	}
	for name := range baseBlobs {
		if _, ok := headBlobs[name]; !ok {
			changed[name] = struct{}{}
		}
	}

	files := make([]string, 0, len(changed))
	for f := range changed {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

func (s *Source) History(path string, limit int) ([]domain.CommitInfo, error) {
	iter, err := s.repo.Log(&git.LogOptions{FileName: &path})
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "gitsource.history",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	defer iter.Close()

	var commits []domain.CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, domain.CommitInfo{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: firstLine(c.Message),
		})
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.history",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return commits, nil
}

// RelPath converts an absolute path inside the worktree into the
// slash-separated repository-relative form used by TextAt and ChangedFiles.
// The workspace may sit below the repository root, so the prefix cannot be
// assumed to be the panels dir name alone.
func (s *Source) RelPath(abs string) (string, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return "", &domain.OpError{
			Op:   "gitsource.relpath",
			Kind: domain.KindExecution,
			Path: abs,
			Err:  err,
		}
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &domain.OpError{
			Op:   "gitsource.relpath",
			Kind: domain.KindInvalidConfig,
			Path: abs,
			Err:  fmt.Errorf("path is outside the repository worktree"),
		}
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func (s *Source) commitAt(ref string) (*object.Commit, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.resolve",
			Kind: domain.KindInvalidRef,
			Path: ref,
			Err:  err,
		}
	}

	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.resolve",
			Kind: domain.KindInvalidRef,
			Path: ref,
			Err:  err,
		}
	}
	return commit, nil
}

// blobsAt maps file path to blob hash for every file under pathPrefix at ref.
func (s *Source) blobsAt(ref, pathPrefix string) (map[string]plumbing.Hash, error) {
	commit, err := s.commitAt(ref)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.changed",
			Kind: domain.KindExecution,
			Path: ref,
			Err:  err,
		}
	}

	blobs := make(map[string]plumbing.Hash)
	err = tree.Files().ForEach(func(f *object.File) error {
		if !underPrefix(f.Name, pathPrefix) {
			return nil
		}
		blobs[f.Name] = f.Hash
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "gitsource.changed",
			Kind: domain.KindExecution,
			Path: ref,
			Err:  err,
		}
	}
	return blobs, nil
}

// underPrefix matches git pathspec semantics: "panels" covers panels itself
// and everything below it. Git paths always use forward slashes.
func underPrefix(name, prefix string) bool {
	if prefix == "" {
		return true
	}
	return name == prefix || strings.HasPrefix(name, prefix+"/")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
