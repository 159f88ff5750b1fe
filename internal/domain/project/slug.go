package project

import (
	"regexp"
	"strings"
)

const (
	exportFilePrefix = "proyek-akademik-"
	untitledSlug     = "tanpa-judul"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases title, collapses every run of non-alphanumeric characters
// into one hyphen and trims hyphens from both ends. It may return "".
func Slug(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// ExportFileName returns the download name for a document titled title.
func ExportFileName(title string) string {
	slug := Slug(title)
	if slug == "" {
		slug = untitledSlug
	}
	return exportFilePrefix + slug + ".json"
}
