package recent

import "testing"

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"linux", PlatformLinux},
		{"freebsd", PlatformFreeBSD},
		{"openbsd", PlatformOpenBSD},
		{"netbsd", PlatformNetBSD},
		{"windows", PlatformUnsupported},
		{"darwin", PlatformUnsupported},
		{"plan9", PlatformUnsupported},
		{"", PlatformUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := ParsePlatform(tt.goos); got != tt.want {
				t.Errorf("ParsePlatform(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestPlatformSupported(t *testing.T) {
	if !PlatformLinux.Supported() {
		t.Error("PlatformLinux.Supported() = false, want true")
	}
	if PlatformUnsupported.Supported() {
		t.Error("PlatformUnsupported.Supported() = true, want false")
	}
}

func TestExtractorForUnsupported(t *testing.T) {
	ext := extractorFor("windows")
	if _, ok := ext.(unsupportedExtractor); !ok {
		t.Errorf("extractorFor(windows) = %T, want unsupportedExtractor", ext)
	}

	ext = extractorFor("linux")
	if _, ok := ext.(xbelExtractor); !ok {
		t.Errorf("extractorFor(linux) = %T, want xbelExtractor", ext)
	}
}
