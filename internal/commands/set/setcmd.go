// Package set implements the command that writes an explicit version
// into every configured manifest.
package set

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/operations"
	"github.com/indaco/verbump/internal/printer"
	"github.com/indaco/verbump/internal/semver"
	"github.com/indaco/verbump/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "set" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set an explicit version in all manifests",
		UsageText: "verbump set <version> [--yes]",
		ArgsUsage: "<version>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the downgrade confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("usage: verbump set <version>")
			}
			return Execute(ctx, cfg, cmd.Args().First(), cmd.Bool("yes"))
		},
	}
}

// Execute validates the target version and writes it to every manifest.
// Downgrades need an interactive confirmation or the --yes flag.
func Execute(ctx context.Context, cfg *config.Config, raw string, assumeYes bool) error {
	target, err := semver.Parse(raw)
	if err != nil {
		return err
	}

	syncer := operations.NewSyncer(core.NewOSFileSystem())

	current, err := syncer.CurrentVersion(ctx, cfg)
	if err != nil {
		return err
	}

	if target.Compare(current) < 0 && !assumeYes {
		if !tui.IsInteractiveFn() {
			return fmt.Errorf("refusing to downgrade %s to %s; re-run with --yes to confirm", current, target)
		}
		ok, err := tui.ConfirmFn(
			fmt.Sprintf("Downgrade %s to %s?", current, target),
			"The target version is lower than the current one.",
		)
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintFaint("Aborted")
			return nil
		}
	}

	updated, err := syncer.Apply(ctx, cfg, target)
	if err != nil {
		return err
	}

	if len(updated) == 0 {
		printer.PrintInfo(fmt.Sprintf("No version change: %s", current))
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("Version set: %s -> %s", current, target))
	for _, path := range updated {
		printer.PrintFaint(fmt.Sprintf("Updated: %s", path))
	}

	return nil
}
