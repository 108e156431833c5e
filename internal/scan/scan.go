// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan locates migratable content in a WordPress HTML export tree.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// indexFile is the file name WordPress exports give every rendered page.
const indexFile = "index.html"

// yearPrefix admits a candidate whose 4th-from-last path segment begins
// with four digits. Admission is deliberately looser than Info derivation:
// a segment like "2012-archive" qualifies here but yields an undated Info.
var yearPrefix = regexp.MustCompile(`^\d{4}`)

// yearExact and monthDigits gate the dated output layout.
var (
	yearExact   = regexp.MustCompile(`^\d{4}$`)
	monthDigits = regexp.MustCompile(`^\d+$`)
)

// Posts walks root and returns candidate post paths in lexical order.
// A candidate is any index.html whose path has at least four segments and
// whose 4th-from-last segment looks like a year. Pagination and top-level
// index files fall outside that shape and are never returned.
func Posts(root string) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != indexFile {
			return nil
		}
		if IsPostCandidate(path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return candidates, nil
}

// IsPostCandidate reports whether path has the .../YYYY/MM/slug/index.html
// shape described above.
func IsPostCandidate(path string) bool {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) < 4 {
		return false
	}
	return yearPrefix.MatchString(parts[len(parts)-4])
}

// Page identifies a static page by its configured name and export path.
// Name comes straight from the configured list, so the written file name
// can never drift from the probe that found it.
type Page struct {
	Name string
	Path string
}

// Pages probes root for each configured static page name and returns the
// ones that exist, preserving the configured order.
func Pages(root string, names []string) []Page {
	var pages []Page
	for _, name := range names {
		path := filepath.Join(root, name, indexFile)
		if _, err := os.Stat(path); err == nil {
			pages = append(pages, Page{Name: name, Path: path})
		}
	}
	return pages
}

// Info holds naming derived from a candidate's path.
type Info struct {
	// Year and Month are the 4th- and 3rd-from-last segments when the
	// year is exactly four digits and the month all digits; empty otherwise.
	Year  string
	Month string

	// Slug is the segment containing index.html, or "index" for a bare path.
	Slug string
}

// Dated reports whether the path carried a usable year/month pair.
func (i Info) Dated() bool {
	return i.Year != ""
}

// PathInfo derives slug and, when present, year and month from a source
// path. The derivation is shared by the migration driver and the scan
// listing so the output layout has a single source of truth.
func PathInfo(path string) Info {
	parts := strings.Split(filepath.ToSlash(path), "/")
	info := Info{Slug: "index"}
	if len(parts) > 1 {
		info.Slug = parts[len(parts)-2]
	}
	if len(parts) >= 4 {
		year, month := parts[len(parts)-4], parts[len(parts)-3]
		if yearExact.MatchString(year) && monthDigits.MatchString(month) {
			info.Year, info.Month = year, month
		}
	}
	return info
}
