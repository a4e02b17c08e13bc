package propers

import (
	"net/url"
	"strings"
)

// SearchURL builds the Bible Gateway search link for a reading citation.
func SearchURL(citation string) string {
	return "https://www.biblegateway.com/passage/?search=" + url.QueryEscape(citation) + "&version=ESV"
}

// DeepLink builds the Accordance deep link for a reading citation. The
// citation is truncated at its first hyphen (the scheme takes only the
// start of a range) and spaces become underscores.
func DeepLink(citation string) string {
	end := strings.Index(citation, "-")
	if end == -1 {
		end = len(citation)
	}
	passage := strings.ReplaceAll(citation[:end], " ", "_")
	return "accord://read/?#" + passage
}
