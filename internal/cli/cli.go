package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/verbump/internal/commands/apply"
	"github.com/indaco/verbump/internal/commands/bump"
	"github.com/indaco/verbump/internal/commands/initialize"
	"github.com/indaco/verbump/internal/commands/set"
	"github.com/indaco/verbump/internal/commands/show"
	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/printer"
	"github.com/indaco/verbump/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command, configuring all
// subcommands and flags for the verbump cli.
//
// Configuration is loaded in the Before hook, after --dir has changed
// the working directory, so a project's own config file is honored no
// matter where verbump was invoked from. Subcommands share the config
// pointer and see the loaded values by the time their action runs.
func New() *urfavecli.Command {
	var (
		noColorFlag bool
		dirFlag     string
		configFlag  string
	)

	cfg := &config.Config{}

	return &urfavecli.Command{
		Name:                  "verbump",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Commit-message driven version bumping across project manifests",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"C"},
				Usage:       "Project root to operate in (manifest paths are resolved against it)",
				Destination: &dirFlag,
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the config file (default " + config.DefaultConfigFile + ")",
				Destination: &configFlag,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			if dirFlag != "" {
				if err := os.Chdir(dirFlag); err != nil {
					return ctx, fmt.Errorf("failed to enter project root %q: %w", dirFlag, err)
				}
			}

			loaded, err := config.LoadConfigFn(configFlag)
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded

			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			apply.Run(cfg),
			bump.Run(cfg),
			show.Run(cfg),
			set.Run(cfg),
			initialize.Run(),
		},
	}
}
