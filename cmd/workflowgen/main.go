package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/greboid/workflowgen/pkg/images"
	"github.com/greboid/workflowgen/pkg/updater"
	"github.com/greboid/workflowgen/pkg/util"
	"github.com/greboid/workflowgen/pkg/versions"
)

const (
	filePerms   = 0644
	workflowDir = ".github/workflows"
)

// app carries what the commands share. Tests swap the filesystem and
// resolvers for in-memory versions.
type app struct {
	fs util.WalkableFS

	actionResolver func() updater.Resolver
	imageResolver  func() updater.Resolver

	debug bool
}

func newApp() *app {
	return &app{
		fs:             util.DefaultFS(),
		actionResolver: func() updater.Resolver { return versions.New() },
		imageResolver:  func() updater.Resolver { return images.NewResolver() },
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workflowgen",
		Short:         "Generate, format and update CI workflow files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newFmtCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))

	return rootCmd
}

// targets returns the workflow files named by args, or every workflow in the
// default directory when there are none.
func (a *app) targets(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{workflowDir}
	}

	files, err := util.FindWorkflows(a.fs, args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no workflow files found in %v", args)
	}
	return files, nil
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
