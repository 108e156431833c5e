// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwulf/static-adamwulf.me/internal/migrate"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

func sampleSummary() migrate.Summary {
	return migrate.Summary{
		Posts: 1,
		Pages: 1,
		Items: []types.MigratedItem{
			{
				SourcePath: "export/2012/03/my-post/index.html",
				OutputPath: "content/posts/2012/03/my-post.html",
				Metadata: types.PostMetadata{
					Title:      "My Post",
					Date:       "2012-03-15T10:00:00+0000",
					Slug:       "my-post",
					Categories: []string{"Travel"},
					Type:       types.TypePost,
				},
				Checksum: "abc123",
			},
			{
				SourcePath: "export/about/index.html",
				OutputPath: "content/about.html",
				Metadata: types.PostMetadata{
					Title: "About",
					Date:  "2008-01-01T00:00:00+00:00",
					Slug:  "index",
					Type:  types.TypePage,
				},
				Checksum: "def456",
			},
		},
		Skipped: []types.SkippedFile{
			{Path: "export/feed/index.html", Reason: "missing article structure"},
		},
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	cfg := types.NewMigrationConfig("export", "hugo-site")
	sum := sampleSummary()

	require.NoError(t, Write(path, cfg, sum))

	got, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "export", got.Migration.Source)
	assert.Equal(t, "hugo-site", got.Migration.Destination)
	assert.Equal(t, 1, got.Summary.Posts)
	assert.Equal(t, 1, got.Summary.Pages)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, sum.Items, got.Items)
	assert.Equal(t, sum.Skipped, got.Skipped)
}

func TestWriteDeterministic(t *testing.T) {
	dir := t.TempDir()
	cfg := types.NewMigrationConfig("export", "hugo-site")
	sum := sampleSummary()

	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, Write(first, cfg, sum))
	require.NoError(t, Write(second, cfg, sum))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "repeat runs should produce identical reports")
}

func TestWriteOmitsEmptySections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	cfg := types.NewMigrationConfig("export", "hugo-site")

	require.NoError(t, Write(path, cfg, migrate.Summary{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "items:")
	assert.NotContains(t, string(data), "skipped:")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
