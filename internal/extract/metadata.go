// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract derives front matter metadata and body content from
// parsed WordPress export documents. Every extractor follows the same
// shape: an ordered list of strategies tried in sequence, each reporting
// whether its source was present. Absence moves to the next strategy;
// nothing in this package returns an error for a missing element.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adamwulf/static-adamwulf.me/internal/scan"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// WordPress theme selectors the extraction relies on. The class-string
// conventions (entry-*, category-*, tag-*) are a coupling to the export's
// generator and must be matched exactly, not inferred.
const (
	titleSelector   = "h1.entry-title"
	dateSelector    = "time.entry-date"
	contentSelector = "div.entry-content"

	categoryPrefix = "category-"
	tagPrefix      = "tag-"

	// uncategorized is WordPress's placeholder term; it never becomes a
	// category.
	uncategorized = "category-uncategorized"

	// fallbackTitle is used when the document has no title element at all.
	fallbackTitle = "Untitled"
)

// datePathPattern captures year and month from a /YYYY/MM/ path fragment.
var datePathPattern = regexp.MustCompile(`/(\d{4})/(\d{2})/`)

// dateLayouts pairs a parse layout with the layout used to render the
// result. Inputs carrying a zone offset render with one; offset-less
// inputs render without, matching how the exported attributes were written.
var dateLayouts = []struct {
	parse  string
	format string
}{
	{time.RFC3339, "2006-01-02T15:04:05-0700"},
	{"2006-01-02T15:04:05-0700", "2006-01-02T15:04:05-0700"},
	{"2006-01-02T15:04:05", "2006-01-02T15:04:05"},
	{"2006-01-02", "2006-01-02T15:04:05"},
}

// Metadata derives the full front matter record for a document. The
// returned Type is always TypePost; the driver overrides it for static
// pages.
func Metadata(doc *goquery.Document, path string, cfg types.ExtractConfig) types.PostMetadata {
	categories, tags := Taxonomies(doc)
	return types.PostMetadata{
		Title:      Title(doc, cfg),
		Date:       Date(doc, path, cfg),
		Slug:       scan.PathInfo(path).Slug,
		Categories: categories,
		Tags:       tags,
		Type:       types.TypePost,
	}
}

// titleStrategy extracts a title and reports whether its source element was
// present. Presence gates the chain, not emptiness: an empty heading still
// wins over the document title.
type titleStrategy func(doc *goquery.Document, cfg types.ExtractConfig) (string, bool)

var titleStrategies = []titleStrategy{entryTitle, documentTitle}

// Title extracts the document title through the strategy chain.
func Title(doc *goquery.Document, cfg types.ExtractConfig) string {
	for _, strategy := range titleStrategies {
		if title, ok := strategy(doc, cfg); ok {
			return title
		}
	}
	return fallbackTitle
}

func entryTitle(doc *goquery.Document, _ types.ExtractConfig) (string, bool) {
	sel := doc.Find(titleSelector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func documentTitle(doc *goquery.Document, cfg types.ExtractConfig) (string, bool) {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.ReplaceAll(sel.Text(), cfg.TitleSuffix, "")), true
}

// dateStrategy extracts a date string and reports whether its source was
// present.
type dateStrategy func(doc *goquery.Document, path string) (string, bool)

var dateStrategies = []dateStrategy{entryDate, pathDate}

// Date extracts the publication date through the strategy chain, falling
// back to cfg.FallbackDate when neither the document nor the path carries
// one.
func Date(doc *goquery.Document, path string, cfg types.ExtractConfig) string {
	for _, strategy := range dateStrategies {
		if date, ok := strategy(doc, path); ok {
			return date
		}
	}
	return cfg.FallbackDate
}

// entryDate reads the time element. A parseable datetime attribute is
// normalized; a missing, empty, or malformed attribute falls back to the
// element's text, taken verbatim.
func entryDate(doc *goquery.Document, _ string) (string, bool) {
	sel := doc.Find(dateSelector).First()
	if sel.Length() == 0 {
		return "", false
	}
	if attr, ok := sel.Attr("datetime"); ok && attr != "" {
		if date, ok := normalizeDate(attr); ok {
			return date, true
		}
	}
	return strings.TrimSpace(sel.Text()), true
}

// pathDate infers midnight-on-the-first from a /YYYY/MM/ path fragment.
func pathDate(_ *goquery.Document, path string) (string, bool) {
	m := datePathPattern.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s-%s-01T00:00:00+00:00", m[1], m[2]), true
}

// normalizeDate parses an ISO-8601 datetime and reformats it as
// %Y-%m-%dT%H:%M:%S%z.
func normalizeDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout.parse, s); err == nil {
			return t.Format(layout.format), true
		}
	}
	return "", false
}

// Taxonomies decodes category and tag names from the first article
// element's class list, preserving class-list order. The uncategorized
// placeholder is dropped. Every other name is the class string with the
// prefix removed, hyphens turned to spaces, and each word title-cased.
func Taxonomies(doc *goquery.Document) (categories, tags []string) {
	sel := doc.Find("article").First()
	if sel.Length() == 0 {
		return nil, nil
	}

	caser := cases.Title(language.English)
	classes, _ := sel.Attr("class")
	for _, class := range strings.Fields(classes) {
		switch {
		case class == uncategorized:
		case strings.HasPrefix(class, categoryPrefix):
			categories = append(categories, taxonomyName(caser, class, categoryPrefix))
		case strings.HasPrefix(class, tagPrefix):
			tags = append(tags, taxonomyName(caser, class, tagPrefix))
		}
	}
	return categories, tags
}

func taxonomyName(caser cases.Caser, class, prefix string) string {
	return caser.String(strings.ReplaceAll(strings.TrimPrefix(class, prefix), "-", " "))
}
