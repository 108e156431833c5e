// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document parses exported WordPress HTML into queryable DOM trees.
// Parsing is lenient: export files with unclosed or misnested tags still
// produce a tree, and queries for absent elements return empty selections
// rather than errors.
package document

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// Load reads and parses the HTML file at path.
func Load(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses HTML from r.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}
