package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func newValidateCommand(cli *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <widget-type> <data-file>",
		Short: "Validate stored instance data against a widget's schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			widgetType, path := args[0], args[1]

			data, err := readInstanceData(path)
			if err != nil {
				return err
			}

			result, err := cli.engine.Factory.ValidateData(widgetType, data)
			if err != nil {
				return err
			}

			for _, message := range result.Errors {
				cmd.Printf("error: %s\n", message)
			}
			for _, message := range result.Warnings {
				cmd.Printf("warning: %s\n", message)
			}
			if !result.Valid {
				return fmt.Errorf("%s: %d validation error(s)", widgetType, len(result.Errors))
			}
			cmd.Println("ok")
			return nil
		},
	}
	return cmd
}

// readInstanceData accepts either a bare instance-data object or a full
// serialization envelope.
func readInstanceData(path string) (schema.InstanceData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	if envelope, err := widget.Deserialize(string(raw)); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var data schema.InstanceData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return data, nil
}
