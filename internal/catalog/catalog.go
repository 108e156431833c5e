// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records migrated content in a SQLite database, keyed by
// source path. Re-running the migration upserts, so the catalog always
// reflects the latest run.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// Catalog manages the migration catalog database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS content (
			source_path TEXT PRIMARY KEY,
			output_path TEXT NOT NULL,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			slug TEXT NOT NULL,
			type TEXT NOT NULL,
			categories TEXT,
			tags TEXT,
			checksum TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_content_type ON content(type)`,
		`CREATE INDEX IF NOT EXISTS idx_content_slug ON content(slug)`,
	}

	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordAll upserts every migrated item in a single transaction.
func (c *Catalog) RecordAll(ctx context.Context, items []types.MigratedItem) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO content (source_path, output_path, title, date, slug, type, categories, tags, checksum)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET
			output_path=excluded.output_path, title=excluded.title, date=excluded.date,
			slug=excluded.slug, type=excluded.type, categories=excluded.categories,
			tags=excluded.tags, checksum=excluded.checksum`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		categoriesJSON, _ := json.Marshal(item.Metadata.Categories)
		tagsJSON, _ := json.Marshal(item.Metadata.Tags)
		_, err := stmt.ExecContext(ctx,
			item.SourcePath, item.OutputPath,
			item.Metadata.Title, item.Metadata.Date, item.Metadata.Slug,
			string(item.Metadata.Type), string(categoriesJSON), string(tagsJSON),
			item.Checksum,
		)
		if err != nil {
			return fmt.Errorf("upserting %s: %w", item.SourcePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog records: %w", err)
	}
	return nil
}

// Lookup returns the cataloged item for sourcePath, or nil when the path
// has never been recorded.
func (c *Catalog) Lookup(ctx context.Context, sourcePath string) (*types.MigratedItem, error) {
	var (
		item           types.MigratedItem
		contentType    string
		categoriesJSON string
		tagsJSON       string
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT source_path, output_path, title, date, slug, type, categories, tags, checksum
		 FROM content WHERE source_path = ?`, sourcePath,
	).Scan(
		&item.SourcePath, &item.OutputPath,
		&item.Metadata.Title, &item.Metadata.Date, &item.Metadata.Slug,
		&contentType, &categoriesJSON, &tagsJSON,
		&item.Checksum,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", sourcePath, err)
	}

	item.Metadata.Type = types.ContentType(contentType)
	if err := json.Unmarshal([]byte(categoriesJSON), &item.Metadata.Categories); err != nil {
		return nil, fmt.Errorf("decoding categories for %s: %w", sourcePath, err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &item.Metadata.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags for %s: %w", sourcePath, err)
	}
	return &item, nil
}

// Count returns the number of cataloged items.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM content`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting content: %w", err)
	}
	return n, nil
}
