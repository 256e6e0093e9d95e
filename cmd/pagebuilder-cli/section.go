package main

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func newSectionCommand(cli *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Work with section records",
	}
	cmd.AddCommand(newSectionNewCommand(cli))
	return cmd
}

func newSectionNewCommand(cli *cliContext) *cobra.Command {
	var (
		title     string
		order     int
		createdBy string
	)

	cmd := &cobra.Command{
		Use:   "new <widget-type>",
		Short: "Scaffold a section record pre-filled with the widget's default data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			widgetType := args[0]

			data, err := cli.engine.Factory.DefaultData(widgetType)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			section := widget.Section{
				ID:         uuid.NewString(),
				WidgetType: widgetType,
				Title:      title,
				Order:      order,
				Active:     true,
				Data:       data,
				Meta: widget.SectionMeta{
					CreatedAt: now,
					UpdatedAt: now,
					CreatedBy: createdBy,
				},
			}

			raw, err := json.MarshalIndent(section, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(raw))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "editor-facing section title")
	cmd.Flags().IntVar(&order, "order", 0, "position within the page")
	cmd.Flags().StringVar(&createdBy, "created-by", "", "author recorded in section metadata")
	return cmd
}
