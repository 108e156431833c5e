package types

// Defaults for extraction settings. These mirror the conventions of the
// site's WordPress export and stay stable across runs so that re-running
// the migration reproduces identical output.
const (
	// DefaultTitleSuffix is the site-name suffix stripped from document
	// titles when no entry heading is present.
	DefaultTitleSuffix = " – Adam Wulf"

	// DefaultFallbackDate is the date of last resort for documents with no
	// date element and no date-bearing path.
	DefaultFallbackDate = "2008-01-01T00:00:00+00:00"
)

// DefaultStaticPages lists the static page directories probed under the
// export root.
var DefaultStaticPages = []string{"about", "projects", "open-source"}

// ExtractConfig holds settings for metadata extraction.
type ExtractConfig struct {
	// TitleSuffix is removed from the document <title> fallback before
	// trimming (e.g. " – Adam Wulf").
	TitleSuffix string `json:"title_suffix" yaml:"title_suffix" mapstructure:"title_suffix"`

	// FallbackDate is used verbatim when no other date source applies.
	FallbackDate string `json:"fallback_date" yaml:"fallback_date" mapstructure:"fallback_date"`
}

// MigrationConfig holds settings for a full migration run.
type MigrationConfig struct {
	ExtractConfig `yaml:",inline" mapstructure:",squash"`

	// ExportDir is the root of the WordPress HTML export tree.
	ExportDir string `json:"export_dir" yaml:"export_dir" mapstructure:"export_dir"`

	// HugoDir is the root of the Hugo site; content files are written
	// under HugoDir/content.
	HugoDir string `json:"hugo_dir" yaml:"hugo_dir" mapstructure:"hugo_dir"`

	// StaticPages lists the page directory names probed under ExportDir.
	StaticPages []string `json:"static_pages" yaml:"static_pages" mapstructure:"static_pages"`

	// CatalogPath, when set, is the SQLite database recording migrated items.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty" mapstructure:"catalog"`

	// ReportPath, when set, is the YAML report written after the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`
}

// NewMigrationConfig returns a MigrationConfig for the given directories
// with all extraction settings at their defaults.
func NewMigrationConfig(exportDir, hugoDir string) MigrationConfig {
	return MigrationConfig{
		ExtractConfig: ExtractConfig{
			TitleSuffix:  DefaultTitleSuffix,
			FallbackDate: DefaultFallbackDate,
		},
		ExportDir:   exportDir,
		HugoDir:     hugoDir,
		StaticPages: DefaultStaticPages,
	}
}
