package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func newRenderCommand(cli *cliContext) *cobra.Command {
	var (
		dataPath     string
		sectionsPath string
		locale       string
		themeName    string
		production   bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render [widget-type]",
		Short: "Render one widget or a sections file to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.manifest.ContextDefaults(widget.Context{
				Locale:         locale,
				Theme:          themeName,
				ProductionSafe: production,
			})

			if sectionsPath != "" {
				return renderSections(cli, cmd, sectionsPath, ctx, output)
			}

			widgetType := ""
			if len(args) > 0 {
				widgetType = args[0]
			} else {
				picked, err := pickWidget(cli)
				if err != nil {
					return err
				}
				widgetType = picked
			}

			data, err := cli.engine.Factory.DefaultData(widgetType)
			if err != nil {
				return err
			}
			if dataPath != "" {
				if data, err = readInstanceData(dataPath); err != nil {
					return err
				}
			}

			unit := cli.engine.Factory.Render(widgetType, data, ctx)
			if unit == nil {
				return fmt.Errorf("widget type %q is not registered", widgetType)
			}
			return writeOutput(cmd, unit.Body, output)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "instance data file (defaults to the widget's default data)")
	cmd.Flags().StringVar(&sectionsPath, "sections", "", "render a JSON file of section records instead of one widget")
	cmd.Flags().StringVar(&locale, "locale", "", "locale for localized field projection")
	cmd.Flags().StringVar(&themeName, "theme", "", "theme name resolved through the configured selector")
	cmd.Flags().BoolVar(&production, "production", false, "use the production-safe pipeline")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func pickWidget(cli *cliContext) (string, error) {
	descriptors := cli.engine.Registry.All()
	if len(descriptors) == 0 {
		return "", fmt.Errorf("no widgets registered")
	}

	options := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		meta := d.Metadata()
		options = append(options, fmt.Sprintf("%s (%s)", meta.ID, meta.Name))
	}

	var answer string
	prompt := &survey.Select{
		Message: "Pick a widget to render:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	for i, option := range options {
		if option == answer {
			return descriptors[i].Metadata().ID, nil
		}
	}
	return "", fmt.Errorf("no widget selected")
}

func renderSections(cli *cliContext, cmd *cobra.Command, path string, ctx widget.Context, output string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sections file: %w", err)
	}

	var sections []widget.Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		return fmt.Errorf("parse sections file %s: %w", path, err)
	}

	var body []byte
	for _, result := range cli.engine.Factory.RenderSections(sections, ctx) {
		if result.Renderable == nil {
			body = append(body, []byte(fmt.Sprintf("<!-- widget %q not found (section %s) -->\n",
				result.Section.WidgetType, result.Section.ID))...)
			continue
		}
		body = append(body, result.Renderable.Body...)
		body = append(body, '\n')
	}
	return writeOutput(cmd, body, output)
}

func writeOutput(cmd *cobra.Command, body []byte, output string) error {
	if output != "" {
		return os.WriteFile(output, body, 0o644)
	}
	cmd.Println(string(body))
	return nil
}
