package xbel

import "encoding/xml"

// Document is the root <xbel> element of a desktop recently-used file.
type Document struct {
	XMLName   xml.Name   `xml:"xbel"`
	Version   string     `xml:"version,attr"`
	Bookmarks []Bookmark `xml:"bookmark"`
}

// Bookmark is a single <bookmark> node. Only href is consumed; the
// mime-type and application metadata carried by desktop trackers is
// ignored.
type Bookmark struct {
	Href     string `xml:"href,attr"`
	Added    string `xml:"added,attr"`
	Modified string `xml:"modified,attr"`
	Visited  string `xml:"visited,attr"`
}
