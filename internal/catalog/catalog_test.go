// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

func testItem(source string) types.MigratedItem {
	return types.MigratedItem{
		SourcePath: source,
		OutputPath: "content/posts/2012/03/my-post.html",
		Metadata: types.PostMetadata{
			Title:      "My Post",
			Date:       "2012-03-15T10:00:00+0000",
			Slug:       "my-post",
			Categories: []string{"Travel"},
			Tags:       []string{"Europe"},
			Type:       types.TypePost,
		},
		Checksum: "abc123",
	}
}

func openCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "migration.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestOpenCreatesSchema(t *testing.T) {
	c := openCatalog(t)

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "migration.db")
	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	assert.FileExists(t, path)
}

func TestRecordAllAndLookup(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	first := testItem("export/2012/03/my-post/index.html")
	second := testItem("export/about/index.html")
	second.OutputPath = "content/about.html"
	second.Metadata.Type = types.TypePage
	second.Metadata.Categories = nil
	second.Metadata.Tags = nil

	require.NoError(t, c.RecordAll(ctx, []types.MigratedItem{first, second}))

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := c.Lookup(ctx, first.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)

	page, err := c.Lookup(ctx, second.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, types.TypePage, page.Metadata.Type)
	assert.Nil(t, page.Metadata.Categories)

	missing, err := c.Lookup(ctx, "export/never/index.html")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecordAllUpserts(t *testing.T) {
	c := openCatalog(t)
	ctx := context.Background()

	item := testItem("export/2012/03/my-post/index.html")
	require.NoError(t, c.RecordAll(ctx, []types.MigratedItem{item}))

	item.Checksum = "def456"
	item.Metadata.Title = "My Post, Revised"
	require.NoError(t, c.RecordAll(ctx, []types.MigratedItem{item}))

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "same source path should update, not duplicate")

	got, err := c.Lookup(ctx, item.SourcePath)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "def456", got.Checksum)
	assert.Equal(t, "My Post, Revised", got.Metadata.Title)
}

func TestRecordAllEmpty(t *testing.T) {
	c := openCatalog(t)

	require.NoError(t, c.RecordAll(context.Background(), nil))

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
