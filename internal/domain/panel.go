package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// slugPattern restricts panel identifiers to filesystem-safe names.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IsValidSlug reports whether slug is safe to use as a panel identifier.
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// MetaEntry is one key/value pair from a panel's header comments.
type MetaEntry struct {
	Key   string
	Value string
}

// Metadata holds a panel's header entries in file order.
type Metadata []MetaEntry

// Get returns the value for key and whether the key is present.
// Keys are matched exactly (case-sensitive).
func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// set records key/value. A repeated key keeps its original position and
// takes the new value.
func (m Metadata) set(key, value string) Metadata {
	for i, e := range m {
		if e.Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, MetaEntry{Key: key, Value: value})
}

// Snapshot is the parsed state of one panel at one point in time.
//
// It is built fresh from a single text blob and never mutated afterwards;
// holding several snapshots of the same panel side by side is fine.
type Snapshot struct {
	Slug     string
	Metadata Metadata
	Genes    []string
}

// PanelRef is a lightweight reference to a panel file on disk.
type PanelRef struct {
	Slug string
	Path string
}

// ParsePanel builds a Snapshot from raw panel text.
//
// A leading run of "# key: value" comment lines forms the metadata header.
// The header ends at the first comment line without a colon or at the first
// gene line; blank lines never end it. All later comment lines are skipped,
// every other non-blank line is trimmed and kept as a gene in file order.
func ParsePanel(slug, text string) Snapshot {
	text = strings.TrimPrefix(text, "\uFEFF")

	snap := Snapshot{Slug: slug}
	inHeader := true

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if inHeader && strings.HasPrefix(line, "#") {
			body := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if key, value, ok := strings.Cut(body, ":"); ok {
				snap.Metadata = snap.Metadata.set(strings.TrimSpace(key), strings.TrimSpace(value))
				continue
			}
			inHeader = false
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		inHeader = false
		snap.Genes = append(snap.Genes, line)
	}

	return snap
}

// ParseGenes returns just the gene lines of raw panel text, in file order.
func ParseGenes(text string) []string {
	return ParsePanel("", text).Genes
}

// Title returns the display name for the panel: the "title" metadata value
// when present, otherwise a title-cased rendering of the slug.
func (s Snapshot) Title() string {
	if v, ok := s.Metadata.Get("title"); ok {
		return v
	}
	return titleCase(strings.ReplaceAll(s.Slug, "_", " "))
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, leaving other characters untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevAlpha := false
	for _, r := range s {
		alpha := unicode.IsLetter(r)
		switch {
		case alpha && !prevAlpha:
			b.WriteRune(unicode.ToUpper(r))
		case alpha:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevAlpha = alpha
	}
	return b.String()
}
