// Package recently exposes the desktop's shared "recently used files"
// tracker as candidate sources for an editor's file picker. It reads the
// XDG recently-used.xbel bookmark document, keeps the file:// entries
// that still exist on disk, merges them with the editor's own recent-file
// history, and ranks everything by last-modification time.
//
// The package owns no state: every query re-reads the bookmark file and
// re-stats the candidates. Failures never propagate to the host; they
// degrade to fewer candidates plus a diagnostic on the configured logger.
package recently

import (
	"github.com/editkit/recently/internal/logger"
	"github.com/editkit/recently/internal/recent"
	"github.com/editkit/recently/internal/source"
)

// Candidate is one selectable entry: absolute path plus display form.
type Candidate = source.Candidate

// Source is a named candidate provider in the shape a multi-source
// picker consumes.
type Source = source.Source

// Logger is the diagnostics channel. Hosts may implement their own or
// build one with NewLogger.
type Logger = logger.Logger

// NewLogger builds a zap-backed Logger. Level is one of debug, info,
// warn, error; pretty selects the colored development encoder.
func NewLogger(level string, pretty bool) Logger {
	return logger.New(level, pretty)
}

// NewNopLogger returns a Logger that discards all diagnostics.
func NewNopLogger() Logger {
	return logger.NewNop()
}

// Host collects the editor-environment hooks the sources consult. Every
// field is optional; zero values select sensible defaults. The library
// treats host-owned lists as read-only snapshots and never mutates them.
type Host struct {
	// GOOS overrides the platform identifier, defaults to runtime.GOOS.
	// System-file extraction only happens on platforms with a known
	// bookmark mechanism; elsewhere the system source yields nothing.
	GOOS string

	// DataDir is the host-resolved data directory holding the bookmark
	// file. Empty selects the XDG convention.
	DataDir string

	// BookmarkFile is an explicit bookmark file path, winning over
	// DataDir when set.
	BookmarkFile string

	// RemotePrefixes are path prefixes treated as network mounts.
	RemotePrefixes []string

	// EditorHistory snapshots the editor's own recent-file list.
	EditorHistory func() []string

	// Include decides whether a history entry is eligible.
	Include func(path string) bool

	// BufferOpen reports whether the path is open as a live buffer;
	// such paths are excluded from the candidates.
	BufferOpen func(path string) bool

	// Display renders a path for presentation. The default abbreviates
	// the home directory to ~.
	Display func(path string) string

	// Open activates a selected candidate.
	Open func(c Candidate)

	// Logger receives diagnostics. Nil discards them.
	Logger Logger
}

// Sources builds the two picker sources backed by host: the system-only
// source first, then the mixed system-plus-editor-history source. Both
// share one navigation history list.
func Sources(host Host) []*Source {
	svc := newService(host)

	hooks := source.Hooks{
		EditorHistory: host.EditorHistory,
		Include:       host.Include,
		BufferOpen:    host.BufferOpen,
		Display:       host.Display,
		Open:          host.Open,
	}

	history := make([]string, 0)
	return []*Source{
		source.NewSystem(svc, hooks, &history),
		source.NewMixed(svc, hooks, &history),
	}
}

// SystemPaths runs the extraction pipeline and returns the ranked
// system-tracked paths without adapter filtering. Mostly useful for
// hosts that want raw paths rather than picker sources.
func SystemPaths(host Host) []string {
	return newService(host).SystemPaths()
}

func newService(host Host) *recent.Service {
	log := host.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return recent.NewService(recent.Options{
		GOOS:           host.GOOS,
		DataDir:        host.DataDir,
		BookmarkFile:   host.BookmarkFile,
		RemotePrefixes: host.RemotePrefixes,
	}, log)
}
