// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/adamwulf/static-adamwulf.me/internal/migrate"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// Report is the on-disk record of a migration run. Writing one after a run
// and diffing it against the previous report shows exactly which content
// files changed between exports.
type Report struct {
	Migration MigrationParams      `yaml:"migration"`
	Summary   RunSummary           `yaml:"summary"`
	Items     []types.MigratedItem `yaml:"items,omitempty"`
	Skipped   []types.SkippedFile  `yaml:"skipped,omitempty"`
}

// MigrationParams stores the directories the run was invoked with.
type MigrationParams struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// RunSummary stores the migration counts. Repeat runs over the same export
// produce byte-identical reports, so there is no timestamp here.
type RunSummary struct {
	Posts int `yaml:"posts"`
	Pages int `yaml:"pages"`
	Total int `yaml:"total"`
}

// Write saves a migration run and its per-file outcomes to a YAML file.
func Write(path string, cfg types.MigrationConfig, sum migrate.Summary) error {
	r := Report{
		Migration: MigrationParams{
			Source:      cfg.ExportDir,
			Destination: cfg.HugoDir,
		},
		Summary: RunSummary{
			Posts: sum.Posts,
			Pages: sum.Pages,
			Total: sum.Total(),
		},
		Items:   sum.Items,
		Skipped: sum.Skipped,
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved report from disk.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
