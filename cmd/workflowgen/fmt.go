package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/greboid/workflowgen/pkg/workflow"
)

func newFmtCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Rewrite workflows in canonical form",
		Long:  "Parse each workflow and write it back with empty fields dropped and keys sorted. Directories are searched for YAML files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.targets(args)
			if err != nil {
				return err
			}

			var unformatted int
			for _, file := range files {
				changed, err := a.format(file, !check)
				if err != nil {
					return err
				}
				if !changed {
					continue
				}

				unformatted++
				if check {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "would reformat %s\n", file)
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reformatted %s\n", file)
				}
			}

			if check && unformatted > 0 {
				return fmt.Errorf("%d workflow file(s) need formatting", unformatted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Report files that would change without writing them")

	return cmd
}

// format reports whether file differs from its canonical form, rewriting it
// when write is set.
func (a *app) format(file string, write bool) (bool, error) {
	data, err := a.fs.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", file, err)
	}

	w, err := workflow.Parse(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file, err)
	}

	formatted, err := workflow.Marshal(w)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file, err)
	}

	if bytes.Equal(data, formatted) {
		slog.Debug("Workflow already formatted", "path", file)
		return false, nil
	}

	if write {
		if err := a.fs.WriteFile(file, formatted, filePerms); err != nil {
			return false, fmt.Errorf("writing %s: %w", file, err)
		}
	}
	return true, nil
}
