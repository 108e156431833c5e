// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the migrate CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamwulf/static-adamwulf.me/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the migrate CLI.
var rootCmd = &cobra.Command{
	Use:   "migrate <wordpress_export_dir> <hugo_site_dir>",
	Short: "Convert a WordPress HTML export into Hugo content files",
	Long: `migrate walks a static WordPress HTML export, extracts each document's
title, date, and taxonomy terms from the theme markup, and writes Hugo
content files with TOML front matter. Blog posts found under
year/month/slug directories land in content/posts/; configured static
pages land at the top of content/.

Every output file is derived entirely from its source document, so
re-running over an unchanged export reproduces identical content files.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./migrate.yaml or ~/.config/migrate/config.yaml)")

	rootCmd.Flags().String("catalog", "", "SQLite catalog to record migrated items in")
	rootCmd.Flags().String("report", "", "YAML report file to write after the run")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("migrate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "migrate"))
		}
	}

	viper.SetEnvPrefix("MIGRATE")
	viper.AutomaticEnv()

	viper.SetDefault("title_suffix", types.DefaultTitleSuffix)
	viper.SetDefault("fallback_date", types.DefaultFallbackDate)
	viper.SetDefault("static_pages", types.DefaultStaticPages)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
