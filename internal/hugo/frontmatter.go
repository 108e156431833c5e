// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hugo renders and writes Hugo content files: a +++-delimited
// front matter block, a blank line, and the verbatim HTML body.
package hugo

import (
	"fmt"
	"strings"

	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// delimiter fences the front matter block.
const delimiter = "+++"

// FrontMatter renders the front matter block for meta, including the
// trailing delimiter line. Only the title is quote-escaped; dates, slugs,
// and taxonomy names never contain quotes in this export.
func FrontMatter(meta types.PostMetadata) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	fmt.Fprintf(&b, "title = \"%s\"\n", escapeQuotes(meta.Title))
	fmt.Fprintf(&b, "date = \"%s\"\n", meta.Date)
	fmt.Fprintf(&b, "slug = \"%s\"\n", meta.Slug)
	if len(meta.Categories) > 0 {
		fmt.Fprintf(&b, "categories = [%s]\n", quoteList(meta.Categories))
	}
	if len(meta.Tags) > 0 {
		fmt.Fprintf(&b, "tags = [%s]\n", quoteList(meta.Tags))
	}
	fmt.Fprintf(&b, "type = \"%s\"\n", meta.Type)
	b.WriteString(delimiter + "\n")
	return b.String()
}

// Render assembles the full content file: front matter, a blank separator
// line, and the body verbatim with no trailing newline.
func Render(meta types.PostMetadata, body string) string {
	return FrontMatter(meta) + "\n" + body
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}
