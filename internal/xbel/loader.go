package xbel

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilename is the conventional name of the desktop bookmark file
// inside the user data directory.
const DefaultFilename = "recently-used.xbel"

// DefaultPath returns the bookmark file location under dataDir.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultFilename)
}

// Loader handles loading and parsing of a recently-used.xbel document.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the bookmark file at filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the bookmark file and returns its raw href values in
// reversed document order. Desktop trackers append the newest entry last,
// so the reversal puts the freshest hint first; the final ordering is
// decided later by the recency ranker from modification times, with this
// order as the tie-break.
func (l *Loader) Load() ([]string, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmark file: %w", err)
	}

	return parseHrefs(data)
}

// parseHrefs extracts href attributes from a raw XBEL document.
// Bookmark nodes without an href are skipped.
func parseHrefs(data []byte) ([]string, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bookmark xml: %w", err)
	}

	hrefs := make([]string, 0, len(doc.Bookmarks))
	for i := len(doc.Bookmarks) - 1; i >= 0; i-- {
		if href := doc.Bookmarks[i].Href; href != "" {
			hrefs = append(hrefs, href)
		}
	}

	return hrefs, nil
}
