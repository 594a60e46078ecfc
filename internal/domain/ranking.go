package domain

import "sort"

// Rank orders candidate paths for presentation: existing local files
// first, most recently modified first; missing or remote entries keep
// their incoming order at the tail.
func Rank(paths []string) []string {
	return RankWith(paths, nil)
}

// RankWith is Rank with an explicit list of network mount prefixes.
// Every path is re-stat'ed here rather than trusting earlier existence
// checks, so entries that vanished since collection fall to the tail.
func RankWith(paths []string, remotePrefixes []string) []string {
	infos := make([]FileInfo, len(paths))
	for i, path := range paths {
		infos[i] = Inspect(path, remotePrefixes)
	}

	// Stable sort keeps the incoming order as the tie-break; for bookmark
	// entries that is the reversed document order.
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if a.Local() != b.Local() {
			return a.Local()
		}
		if a.Local() {
			return a.ModTime.After(b.ModTime)
		}
		return false
	})

	ranked := make([]string, len(infos))
	for i, info := range infos {
		ranked[i] = info.Path
	}
	return ranked
}
