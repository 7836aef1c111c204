package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greboid/workflowgen/pkg/config"
	"github.com/greboid/workflowgen/pkg/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the container build workflow",
		Long:  "Generate a workflow that builds every configured container in dependency order and keeps their workflows up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.fs, configPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", configPath, err)
			}

			if err := generator.New(cfg, a.fs).Generate(outputPath); err != nil {
				return fmt.Errorf("generating workflow: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workflow file written to: %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "workflowgen.yaml", "Path to the generator config")
	cmd.Flags().StringVarP(&outputPath, "output", "o", workflowDir+"/build.yml", "Output path for workflow file")

	return cmd
}
