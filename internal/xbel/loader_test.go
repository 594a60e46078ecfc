package xbel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	xbelPath := filepath.Join(tmpDir, DefaultFilename)

	xbelContent := `<?xml version="1.0" encoding="UTF-8"?>
<xbel version="1.0">
  <bookmark href="file:///home/u/old.txt" added="2024-01-01T10:00:00Z" modified="2024-01-01T10:00:00Z" visited="2024-01-01T10:00:00Z">
    <info/>
  </bookmark>
  <bookmark href="file:///home/u/new.txt" added="2024-06-01T10:00:00Z" modified="2024-06-01T10:00:00Z" visited="2024-06-01T10:00:00Z"/>
</xbel>
`

	err := os.WriteFile(xbelPath, []byte(xbelContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test XBEL file: %v", err)
	}

	loader := NewLoader(xbelPath)
	hrefs, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Document order is reversed: last-appended entry comes first.
	want := []string{"file:///home/u/new.txt", "file:///home/u/old.txt"}
	if len(hrefs) != len(want) {
		t.Fatalf("Load() returned %d hrefs, want %d", len(hrefs), len(want))
	}
	for i := range want {
		if hrefs[i] != want[i] {
			t.Errorf("hrefs[%d] = %q, want %q", i, hrefs[i], want[i])
		}
	}
}

func TestLoaderLoadSkipsMissingHref(t *testing.T) {
	tmpDir := t.TempDir()
	xbelPath := filepath.Join(tmpDir, DefaultFilename)

	xbelContent := `<?xml version="1.0" encoding="UTF-8"?>
<xbel version="1.0">
  <bookmark added="2024-01-01T10:00:00Z"/>
  <bookmark href="file:///home/u/a.txt"/>
</xbel>
`

	err := os.WriteFile(xbelPath, []byte(xbelContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test XBEL file: %v", err)
	}

	hrefs, err := NewLoader(xbelPath).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(hrefs) != 1 || hrefs[0] != "file:///home/u/a.txt" {
		t.Errorf("Load() = %v, want [file:///home/u/a.txt]", hrefs)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/recently-used.xbel")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadMalformedXML(t *testing.T) {
	tmpDir := t.TempDir()
	xbelPath := filepath.Join(tmpDir, DefaultFilename)

	err := os.WriteFile(xbelPath, []byte("<xbel><bookmark"), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test XBEL file: %v", err)
	}

	_, err = NewLoader(xbelPath).Load()
	if err == nil {
		t.Error("Load() with malformed XML should return error")
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/home/u/.local/share")
	want := filepath.Join("/home/u/.local/share", DefaultFilename)
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
