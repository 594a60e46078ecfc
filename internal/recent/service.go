// Package recent runs the recently-used files pipeline: bookmark file ->
// raw hrefs -> local paths -> merge with editor history -> recency rank.
package recent

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/editkit/recently/internal/domain"
	"github.com/editkit/recently/internal/fileuri"
	"github.com/editkit/recently/internal/logger"
	"github.com/editkit/recently/internal/xbel"
)

// Options tunes a Service. The zero value resolves the bookmark file via
// the XDG convention on the current platform with default remote
// prefixes.
type Options struct {
	// GOOS overrides the platform identifier, defaults to runtime.GOOS.
	GOOS string

	// BookmarkFile is an explicit bookmark file path. When set it wins
	// over DataDir resolution.
	BookmarkFile string

	// DataDir is the host-resolved base data directory. Empty selects
	// the XDG lookup ($XDG_DATA_HOME, then ~/.local/share).
	DataDir string

	// RemotePrefixes are the network mount prefixes for the ranker.
	RemotePrefixes []string
}

// Service is the extraction pipeline. It is stateless between calls:
// every query re-reads the bookmark file and re-stats every candidate,
// trading a little latency for always-fresh results.
type Service struct {
	opts Options
	ext  extractor
	log  logger.Logger
}

// NewService builds a pipeline for the given options. A nil log installs
// a no-op diagnostics channel.
func NewService(opts Options, log logger.Logger) *Service {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Service{
		opts: opts,
		ext:  extractorFor(opts.GOOS),
		log:  log,
	}
}

// BookmarkPath resolves the bookmark file location.
func (s *Service) BookmarkPath() string {
	if s.opts.BookmarkFile != "" {
		return s.opts.BookmarkFile
	}
	return xbel.DefaultPath(s.dataDir())
}

func (s *Service) dataDir() string {
	if s.opts.DataDir != "" {
		return s.opts.DataDir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// SystemPaths returns the ranked local file paths tracked by the desktop
// bookmark file. Unsupported platforms and unreadable files both degrade
// to an empty list; neither is an error for the caller.
func (s *Service) SystemPaths() []string {
	return domain.RankWith(s.ext.Extract(s), s.opts.RemotePrefixes)
}

// MergedPaths unions the system list with the editor's own history and
// ranks the result. The include predicate filters history entries before
// the merge; nil admits everything.
func (s *Service) MergedPaths(editorHistory []string, include func(string) bool) []string {
	system := s.ext.Extract(s)
	return domain.RankWith(Merge(system, editorHistory, include), s.opts.RemotePrefixes)
}

// readBookmarks loads hrefs from the bookmark file and keeps only the
// ones that normalize to an existing local path. A missing or unreadable
// file degrades to an empty list with a notice.
func (s *Service) readBookmarks() []string {
	path := s.BookmarkPath()

	hrefs, err := xbel.NewLoader(path).Load()
	if err != nil {
		s.log.Warnf("cannot read recently-used bookmarks at %s: %v", path, err)
		return nil
	}

	paths := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		if p, ok := fileuri.Normalize(href); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// Merge concatenates the include-filtered editor history with the system
// paths and drops duplicate path strings, first occurrence winning. The
// relative order only matters as the ranker's tie-break.
func Merge(systemPaths, editorHistory []string, include func(string) bool) []string {
	merged := make([]string, 0, len(systemPaths)+len(editorHistory))
	seen := make(map[string]struct{}, len(systemPaths)+len(editorHistory))

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		merged = append(merged, path)
	}

	for _, path := range editorHistory {
		if include != nil && !include(path) {
			continue
		}
		add(path)
	}
	for _, path := range systemPaths {
		add(path)
	}

	return merged
}
