package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamwulf/static-adamwulf.me/internal/catalog"
	"github.com/adamwulf/static-adamwulf.me/internal/migrate"
	"github.com/adamwulf/static-adamwulf.me/internal/report"
	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// runMigrate executes the full migration, then writes the optional catalog
// and report artifacts.
func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	sum, err := migrate.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.CatalogPath != "" {
		if err := recordCatalog(cmd, cfg, sum); err != nil {
			return err
		}
	}
	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, cfg, sum); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Report written to %s", cfg.ReportPath))
	}
	return nil
}

// buildConfig assembles the run configuration from the positional arguments,
// the config file, and the flags. Flags win over config file values.
func buildConfig(cmd *cobra.Command, args []string) (types.MigrationConfig, error) {
	exportDir, hugoDir := args[0], args[1]

	if _, err := os.Stat(exportDir); err != nil {
		return types.MigrationConfig{}, fmt.Errorf("wordpress export directory %s does not exist", exportDir)
	}
	if _, err := os.Stat(hugoDir); err != nil {
		return types.MigrationConfig{}, fmt.Errorf("hugo site directory %s does not exist", hugoDir)
	}

	cfg := types.NewMigrationConfig(exportDir, hugoDir)
	cfg.TitleSuffix = viper.GetString("title_suffix")
	cfg.FallbackDate = viper.GetString("fallback_date")
	cfg.StaticPages = viper.GetStringSlice("static_pages")

	cfg.CatalogPath, _ = cmd.Flags().GetString("catalog")
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = viper.GetString("catalog")
	}
	cfg.ReportPath, _ = cmd.Flags().GetString("report")
	if cfg.ReportPath == "" {
		cfg.ReportPath = viper.GetString("report")
	}
	return cfg, nil
}

func recordCatalog(cmd *cobra.Command, cfg types.MigrationConfig, sum migrate.Summary) error {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := cat.RecordAll(cmd.Context(), sum.Items); err != nil {
		return err
	}
	fmt.Println(color.GreenString("Cataloged %d items in %s", len(sum.Items), cfg.CatalogPath))
	return nil
}
