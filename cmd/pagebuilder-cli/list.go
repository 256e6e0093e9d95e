package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func newListCommand(cli *cliContext) *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered widgets, optionally filtered by category or search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			var descriptors []widget.Descriptor
			switch {
			case search != "":
				descriptors = cli.engine.Registry.Search(search)
			case category != "":
				descriptors = cli.engine.Registry.ByCategory(category)
			default:
				descriptors = cli.engine.Registry.All()
			}

			if asJSON {
				metas := make([]widget.Metadata, 0, len(descriptors))
				for _, d := range descriptors {
					metas = append(metas, d.Metadata())
				}
				raw, err := json.MarshalIndent(metas, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(raw))
				return nil
			}

			for _, d := range descriptors {
				meta := d.Metadata()
				cmd.Printf("%-16s %-10s v%-8s %s\n", meta.ID, meta.Category, meta.Version, meta.Name)
			}
			stats := cli.engine.Registry.Stats()
			cmd.Printf("\n%d widget(s) in %d categor(ies)\n", stats.Total, len(stats.ByCategory))

			if incomplete := cli.engine.Registry.CheckCompleteness(); len(incomplete) > 0 {
				cmd.Println(fmt.Sprintf("note: relying on the preview fallback for production output: %v", incomplete))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive search over name, description, and tags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit metadata as JSON")
	return cmd
}
