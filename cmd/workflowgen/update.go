package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greboid/workflowgen/pkg/updater"
	"github.com/greboid/workflowgen/pkg/workflow"
)

func newUpdateCmd(a *app) *cobra.Command {
	var actions, images bool

	cmd := &cobra.Command{
		Use:   "update [files...]",
		Short: "Update action versions and pin container images",
		Long: `Move every action reference to the newest tag of its repository and pin
job and service container images to their current digest. With neither
--actions nor --images both are updated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.targets(args)
			if err != nil {
				return err
			}

			if !actions && !images {
				actions, images = true, true
			}

			var opts updater.Options
			if actions {
				opts.Actions = a.actionResolver()
			}
			if images {
				opts.Images = a.imageResolver()
			}

			for _, file := range files {
				data, err := a.fs.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}

				w, err := workflow.Parse(data)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}

				updated, changes, err := updater.Update(cmd.Context(), w, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if len(changes) == 0 {
					continue
				}

				out, err := workflow.Marshal(updated)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if err := a.fs.WriteFile(file, out, filePerms); err != nil {
					return fmt.Errorf("writing %s: %w", file, err)
				}

				for _, change := range changes {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", file, change)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&actions, "actions", false, "Update action references")
	cmd.Flags().BoolVar(&images, "images", false, "Pin container images to digests")

	return cmd
}
