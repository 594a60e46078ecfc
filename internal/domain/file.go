package domain

import (
	"os"
	"strings"
	"time"
)

// DefaultRemotePrefixes lists path prefixes conventionally backed by
// network mounts. Files under these never rank ahead of plain local
// files, whatever their timestamps say.
var DefaultRemotePrefixes = []string{"/net/", "/hosts/"}

// FileInfo is the ranking view of one candidate path, captured by a
// single stat call at ranking time.
type FileInfo struct {
	// Path is the absolute, decoded local path string.
	Path string

	// Exists is the result of the stat call. A path that vanished
	// between collection and ranking shows up here as false.
	Exists bool

	// Remote marks paths sitting behind a known network mount prefix.
	Remote bool

	// ModTime is the last-modification timestamp. The access time is
	// deliberately not used: reading atime as a ranking signal would
	// count the ranking itself as a use and corrupt future rankings.
	ModTime time.Time
}

// Inspect stats path and classifies it for ranking. A nil prefix list
// selects DefaultRemotePrefixes.
func Inspect(path string, remotePrefixes []string) FileInfo {
	info := FileInfo{
		Path:   path,
		Remote: IsRemote(path, remotePrefixes),
	}

	if st, err := os.Stat(path); err == nil {
		info.Exists = true
		info.ModTime = st.ModTime()
	}

	return info
}

// Local reports whether the file is a first-class candidate: present on
// disk and not behind a network mount.
func (f FileInfo) Local() bool {
	return f.Exists && !f.Remote
}

// IsRemote reports whether path sits under one of the network mount
// prefixes. A nil prefix list selects DefaultRemotePrefixes; an empty
// non-nil list disables remote detection.
func IsRemote(path string, prefixes []string) bool {
	if prefixes == nil {
		prefixes = DefaultRemotePrefixes
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
