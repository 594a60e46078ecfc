// Package source adapts ranked path lists into the named candidate
// sources a picker UI consumes.
package source

import (
	"os"
	"path/filepath"
	"strings"
)

// Category and style tags shared by both sources. Pickers use these to
// group and render entries.
const (
	CategoryFile = "file"
	StyleFile    = "file"
)

// Candidate is one selectable entry: the absolute path plus the display
// form shown by the picker.
type Candidate struct {
	Path    string
	Display string
}

// Source is the shape a multi-source picker consumes: metadata plus a
// zero-argument candidate getter. Candidates is evaluated at query time
// and never cached, so each picker invocation sees fresh results.
type Source struct {
	// Name is the display name of the source.
	Name string

	// Key is the single-character narrowing key inside the picker.
	Key rune

	// Category is the semantic tag of the entries.
	Category string

	// Style is the visual style tag for rendering.
	Style string

	// History is the navigation history shared between the sources.
	History *[]string

	// Open activates a selected candidate via the host environment.
	Open func(Candidate)

	// Candidates materializes the current entries.
	Candidates func() []Candidate
}

// pathLister is what the adapter needs from the pipeline.
type pathLister interface {
	SystemPaths() []string
	MergedPaths(editorHistory []string, include func(string) bool) []string
}

// Hooks are the host-environment callbacks consulted when materializing
// candidates. Nil fields fall back to defaults: empty history, admit
// everything, nothing open, home-abbreviated display, no-op open action.
type Hooks struct {
	EditorHistory func() []string
	Include       func(path string) bool
	BufferOpen    func(path string) bool
	Display       func(path string) string
	Open          func(c Candidate)
}

// NewSystem builds the source exposing only externally-tracked files.
func NewSystem(svc pathLister, hooks Hooks, history *[]string) *Source {
	return &Source{
		Name:     "System recent files",
		Key:      'F',
		Category: CategoryFile,
		Style:    StyleFile,
		History:  history,
		Open:     hooks.open(),
		Candidates: func() []Candidate {
			return hooks.candidates(svc.SystemPaths())
		},
	}
}

// NewMixed builds the source exposing the union of system files and the
// editor's own recent-file history.
func NewMixed(svc pathLister, hooks Hooks, history *[]string) *Source {
	return &Source{
		Name:     "Recent files",
		Key:      'f',
		Category: CategoryFile,
		Style:    StyleFile,
		History:  history,
		Open:     hooks.open(),
		Candidates: func() []Candidate {
			return hooks.candidates(svc.MergedPaths(hooks.editorHistory(), hooks.Include))
		},
	}
}

// candidates drops paths the host has open as live buffers and renders
// the rest through the display formatter.
func (h Hooks) candidates(paths []string) []Candidate {
	out := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		if h.BufferOpen != nil && h.BufferOpen(path) {
			continue
		}
		out = append(out, Candidate{Path: path, Display: h.display(path)})
	}
	return out
}

func (h Hooks) editorHistory() []string {
	if h.EditorHistory == nil {
		return nil
	}
	return h.EditorHistory()
}

func (h Hooks) display(path string) string {
	if h.Display != nil {
		return h.Display(path)
	}
	return AbbreviateHome(path)
}

func (h Hooks) open() func(Candidate) {
	if h.Open != nil {
		return h.Open
	}
	return func(Candidate) {}
}

// AbbreviateHome rewrites a path under the user's home directory into the
// conventional ~/ form. Paths outside home come back unchanged.
func AbbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
