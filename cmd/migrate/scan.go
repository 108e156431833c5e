package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamwulf/static-adamwulf.me/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <wordpress_export_dir>",
	Short: "List migratable documents without writing anything",
	Long: `Scan walks the export tree and lists every blog post candidate and
static page a migration run would process, without touching the Hugo
site. Undated posts show an empty date column; they would be written
directly under content/posts/ instead of a year/month directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := args[0]
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("wordpress export directory %s does not exist", root)
	}

	posts, err := scan.Posts(root)
	if err != nil {
		return err
	}
	pages := scan.Pages(root, viper.GetStringSlice("static_pages"))

	if len(posts)+len(pages) == 0 {
		fmt.Println(color.YellowString("No migratable documents found under %s", root))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Kind", "Slug", "Date"})
	for _, p := range posts {
		info := scan.PathInfo(p)
		date := ""
		if info.Dated() {
			date = info.Year + "-" + info.Month
		}
		t.AppendRow(table.Row{p, "post", info.Slug, date})
	}
	for _, pg := range pages {
		t.AppendRow(table.Row{pg.Path, "page", pg.Name, ""})
	}
	t.Render()

	fmt.Println(color.GreenString("%d posts and %d pages ready to migrate", len(posts), len(pages)))
	return nil
}
