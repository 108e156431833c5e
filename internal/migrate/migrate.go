// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package migrate drives the WordPress-to-Hugo conversion: scan the export
// tree, convert each candidate post and configured static page, and report
// counts. The pipeline is a single sequential pass; per-file problems skip
// that file and keep going, I/O failures abort the run.
package migrate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamwulf/static-adamwulf.me/internal/document"
	"github.com/adamwulf/static-adamwulf.me/internal/extract"
	"github.com/adamwulf/static-adamwulf.me/internal/hugo"
	"github.com/adamwulf/static-adamwulf.me/internal/scan"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// Summary holds the outcome of a migration run.
type Summary struct {
	Posts   int
	Pages   int
	Items   []types.MigratedItem
	Skipped []types.SkippedFile
}

// Total returns the number of content files written.
func (s Summary) Total() int {
	return s.Posts + s.Pages
}

// Run executes the full migration, writing per-file status lines to w.
// The Hugo content directory is created if absent.
func Run(cfg types.MigrationConfig, w io.Writer) (Summary, error) {
	var summary Summary

	contentDir := filepath.Join(cfg.HugoDir, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating %s: %w", contentDir, err)
	}

	fmt.Fprintln(w, "Processing blog posts...")
	posts, err := scan.Posts(cfg.ExportDir)
	if err != nil {
		return summary, err
	}
	for _, path := range posts {
		item, skip, err := MigratePost(path, contentDir, cfg, w)
		if err != nil {
			return summary, err
		}
		if skip != nil {
			summary.Skipped = append(summary.Skipped, *skip)
			continue
		}
		summary.Posts++
		summary.Items = append(summary.Items, *item)
	}
	fmt.Fprintf(w, "Migrated %d blog posts\n", summary.Posts)

	fmt.Fprintln(w, "Processing static pages...")
	for _, page := range scan.Pages(cfg.ExportDir, cfg.StaticPages) {
		item, skip, err := MigratePage(page, contentDir, cfg, w)
		if err != nil {
			return summary, err
		}
		if skip != nil {
			summary.Skipped = append(summary.Skipped, *skip)
			continue
		}
		summary.Pages++
		summary.Items = append(summary.Items, *item)
	}
	fmt.Fprintf(w, "Migrated %d static pages\n", summary.Pages)

	fmt.Fprintf(w, "Migration complete: %d posts, %d pages (%d total)\n",
		summary.Posts, summary.Pages, summary.Total())
	return summary, nil
}

// MigratePost converts a single exported post. Documents without post
// structure are skipped silently; documents whose extracted body is empty
// are skipped with a warning. Exactly one of the returned item and skip
// record is non-nil unless the error is.
func MigratePost(path, contentDir string, cfg types.MigrationConfig, w io.Writer) (*types.MigratedItem, *types.SkippedFile, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if !extract.HasPostStructure(doc) {
		return nil, &types.SkippedFile{Path: path, Reason: "missing article structure"}, nil
	}

	meta := extract.Metadata(doc, path, cfg.ExtractConfig)
	body, err := extract.Content(doc)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(body) == "" {
		fmt.Fprintf(w, "warning: no content found in %s\n", path)
		return nil, &types.SkippedFile{Path: path, Reason: "no content"}, nil
	}

	target := hugo.PostTarget(contentDir, scan.PathInfo(path))
	sum, err := hugo.WriteContentFile(target, meta, body)
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintf(w, "migrated: %s -> %s\n", path, target)
	return &types.MigratedItem{
		SourcePath: path,
		OutputPath: target,
		Metadata:   meta,
		Checksum:   sum,
	}, nil, nil
}

// MigratePage converts a configured static page. Pages skip only when no
// content container can be located; unlike posts, a located container is
// written even when nearly empty.
func MigratePage(page scan.Page, contentDir string, cfg types.MigrationConfig, w io.Writer) (*types.MigratedItem, *types.SkippedFile, error) {
	doc, err := document.Load(page.Path)
	if err != nil {
		return nil, nil, err
	}

	body, err := extract.PageContent(doc)
	if err != nil {
		return nil, nil, err
	}
	if body == "" {
		fmt.Fprintf(w, "warning: no content found for page %s\n", page.Path)
		return nil, &types.SkippedFile{Path: page.Path, Reason: "no content container"}, nil
	}

	meta := extract.Metadata(doc, page.Path, cfg.ExtractConfig)
	meta.Type = types.TypePage

	target := hugo.PageTarget(contentDir, page.Name)
	sum, err := hugo.WriteContentFile(target, meta, body)
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintf(w, "migrated page: %s -> %s\n", page.Path, target)
	return &types.MigratedItem{
		SourcePath: page.Path,
		OutputPath: target,
		Metadata:   meta,
		Checksum:   sum,
	}, nil, nil
}
