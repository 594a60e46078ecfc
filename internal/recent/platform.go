package recent

// Platform identifies the host operating system family for the purpose
// of locating the desktop bookmark file. The set is closed: anything not
// listed here maps to PlatformUnsupported.
type Platform int

const (
	PlatformUnsupported Platform = iota
	PlatformLinux
	PlatformFreeBSD
	PlatformOpenBSD
	PlatformNetBSD
)

// ParsePlatform maps a GOOS-style identifier to a Platform.
func ParsePlatform(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "freebsd":
		return PlatformFreeBSD
	case "openbsd":
		return PlatformOpenBSD
	case "netbsd":
		return PlatformNetBSD
	default:
		return PlatformUnsupported
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformFreeBSD:
		return "freebsd"
	case PlatformOpenBSD:
		return "openbsd"
	case PlatformNetBSD:
		return "netbsd"
	default:
		return "unsupported"
	}
}

// Supported reports whether the platform keeps a desktop recently-used
// bookmark file at the XDG data location.
func (p Platform) Supported() bool {
	return p != PlatformUnsupported
}

// extractor produces the system-tracked recent file paths for one
// platform family.
type extractor interface {
	Extract(s *Service) []string
}

// xbelExtractor reads the XDG recently-used.xbel document.
type xbelExtractor struct{}

func (xbelExtractor) Extract(s *Service) []string {
	return s.readBookmarks()
}

// unsupportedExtractor is the default variant for platforms without a
// known bookmark mechanism. It yields nothing and says why.
type unsupportedExtractor struct {
	goos string
}

func (u unsupportedExtractor) Extract(s *Service) []string {
	s.log.Infof("recently-used bookmarks are not available on platform %q", u.goos)
	return nil
}

// extractorFor selects the extraction strategy for a platform identifier.
func extractorFor(goos string) extractor {
	if ParsePlatform(goos).Supported() {
		return xbelExtractor{}
	}
	return unsupportedExtractor{goos: goos}
}
