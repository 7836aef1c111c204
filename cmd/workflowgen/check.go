package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/greboid/workflowgen/pkg/graph"
	"github.com/greboid/workflowgen/pkg/workflow"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate workflows",
		Long:  "Parse each workflow and check that every job's needs name existing jobs without forming a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.targets(args)
			if err != nil {
				return err
			}

			var errs []error
			for _, file := range files {
				if err := a.check(file); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", file, err))
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", file)
			}
			return errors.Join(errs...)
		},
	}
}

func (a *app) check(file string) error {
	data, err := a.fs.ReadFile(file)
	if err != nil {
		return err
	}

	w, err := workflow.Parse(data)
	if err != nil {
		return err
	}

	g := graph.FromWorkflow(w)
	if err := g.Validate(); err != nil {
		return err
	}

	layers, err := g.TopologicalSort()
	if err != nil {
		return err
	}

	slog.Debug("Workflow is valid", "path", file, "jobs", len(w.Jobs), "layers", layers)
	return nil
}
