// Package fileuri converts file:// URIs from desktop bookmark entries
// into absolute local filesystem paths.
package fileuri

import (
	"net/url"
	"os"
	"strings"
)

// Scheme is the only URI scheme accepted for candidates. Anything else
// (http, sftp, network shares) is out of scope for a local file picker.
const Scheme = "file://"

// Normalize converts href into an absolute local path. It reports false
// for non-file URIs, undecodable escapes, and paths that no longer exist
// on disk. It never panics on malformed input.
func Normalize(href string) (string, bool) {
	path, ok := Decode(href)
	if !ok {
		return "", false
	}

	if _, err := os.Stat(path); err != nil {
		return "", false
	}

	return path, true
}

// Decode strips the file:// scheme and reverses percent-encoding without
// touching the filesystem. The decoded bytes are taken as UTF-8.
func Decode(href string) (string, bool) {
	if !strings.HasPrefix(href, Scheme) {
		return "", false
	}

	path, err := url.PathUnescape(href[len(Scheme):])
	if err != nil || path == "" {
		return "", false
	}

	return path, true
}
