// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hugo

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adamwulf/static-adamwulf.me/internal/scan"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// postsDir is the subdirectory under content/ for dated and undated posts.
const postsDir = "posts"

// PostTarget returns the output path for a post: nested under year and
// month when the source path carried them, flat under posts/ otherwise.
func PostTarget(contentDir string, info scan.Info) string {
	if info.Dated() {
		return filepath.Join(contentDir, postsDir, info.Year, info.Month, info.Slug+".html")
	}
	return filepath.Join(contentDir, postsDir, info.Slug+".html")
}

// PageTarget returns the output path for a static page.
func PageTarget(contentDir, name string) string {
	return filepath.Join(contentDir, name+".html")
}

// WriteContentFile renders meta and body to path, creating parent
// directories as needed and overwriting any existing file. It returns the
// SHA-256 hex digest of the written bytes.
func WriteContentFile(path string, meta types.PostMetadata, body string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	data := []byte(Render(meta, body))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}
