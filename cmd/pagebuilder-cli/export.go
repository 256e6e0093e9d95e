package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagebuilder/pkg/schemaexport"
)

func newExportCommand(cli *cliContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <widget-type>",
		Short: "Export a widget's config schema as OpenAPI JSON for the form builder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.engine.Factory.Config(args[0])
			if err != nil {
				return err
			}

			raw, err := schemaexport.ExportJSON(cfg)
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, raw, 0o644)
			}
			cmd.Println(string(raw))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
