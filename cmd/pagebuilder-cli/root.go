package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pagebuilder "github.com/goliatone/go-pagebuilder"
	"github.com/goliatone/go-pagebuilder/pkg/manifest"
)

type cliContext struct {
	engine       *pagebuilder.Engine
	manifest     manifest.Manifest
	manifestPath string
}

func newRootCommand() *cobra.Command {
	cli := &cliContext{}

	root := &cobra.Command{
		Use:           "pagebuilder-cli",
		Short:         "Inspect, validate, and render page-builder widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			engine, err := pagebuilder.New()
			if err != nil {
				return fmt.Errorf("initialise engine: %w", err)
			}
			if cli.manifestPath != "" {
				doc, err := manifest.LoadFS(os.DirFS(cli.manifestPath))
				if err != nil {
					return err
				}
				if err := doc.Apply(engine.Registry); err != nil {
					return fmt.Errorf("apply manifest %s: %w", doc.Source(), err)
				}
				cli.manifest = doc
			}
			cli.engine = engine
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cli.manifestPath, "manifest-dir", "",
		"directory of catalog manifest files applied before any command runs")

	root.AddCommand(
		newListCommand(cli),
		newValidateCommand(cli),
		newExportCommand(cli),
		newRenderCommand(cli),
		newSectionCommand(cli),
	)
	return root
}
