// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ContentType classifies a migrated document for the front matter type field.
type ContentType string

const (
	TypePost ContentType = "post"
	TypePage ContentType = "page"
)

// PostMetadata holds the front matter fields derived from a document.
// Title, Date, and Slug are always non-empty; the extraction fallback
// chains guarantee a value for each. Categories and Tags are emitted only
// when non-empty, in class-list order.
type PostMetadata struct {
	// Title is the document heading, the suffix-stripped <title> text, or
	// the literal "Untitled".
	Title string `json:"title" yaml:"title"`

	// Date is an ISO-8601 timestamp string, already formatted for output.
	Date string `json:"date" yaml:"date"`

	// Slug is the path segment naming the output file (e.g. "my-post").
	Slug string `json:"slug" yaml:"slug"`

	// Categories lists category names decoded from the article class list.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Tags lists tag names decoded from the article class list.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Type distinguishes dated posts from static pages.
	Type ContentType `json:"type" yaml:"type"`
}

// MigratedItem records a successfully written content file.
type MigratedItem struct {
	// SourcePath is the export file the content came from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the written Hugo content file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Metadata is the front matter the file was written with.
	Metadata PostMetadata `json:"metadata" yaml:"metadata"`

	// Checksum is the SHA-256 hex digest of the written file.
	Checksum string `json:"checksum" yaml:"checksum"`
}

// SkippedFile records a candidate that was excluded from the migration.
type SkippedFile struct {
	// Path is the export file that was skipped.
	Path string `json:"path" yaml:"path"`

	// Reason is a short human-readable explanation.
	Reason string `json:"reason" yaml:"reason"`
}
