// Package apply implements the commit-message driven bump command, the
// operation release pipelines invoke once per merge.
package apply

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/classifier"
	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/operations"
	"github.com/indaco/verbump/internal/printer"
	"github.com/indaco/verbump/internal/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "apply" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Classify a commit message and bump all manifests accordingly",
		UsageText: "verbump apply <commit-message>",
		ArgsUsage: "<commit-message>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("usage: verbump apply <commit-message>")
			}
			return Execute(ctx, cfg, cmd.Args().First())
		},
	}
}

// Execute runs the full classify/read/bump/rewrite flow for one commit
// message. Unrecognized prefixes and already-current manifests are
// successful no-ops, not errors.
func Execute(ctx context.Context, cfg *config.Config, commitMsg string) error {
	bumpType := classifier.Classify(commitMsg)
	if bumpType == semver.BumpNone {
		printer.PrintFaint("No version bump for this commit message")
		return nil
	}

	syncer := operations.NewSyncer(core.NewOSFileSystem())

	current, err := syncer.CurrentVersion(ctx, cfg)
	if err != nil {
		return err
	}

	next := current.Bump(bumpType)
	if next == current {
		printer.PrintInfo(fmt.Sprintf("No version change: %s", current))
		return nil
	}

	updated, err := syncer.Apply(ctx, cfg, next)
	if err != nil {
		return err
	}

	if len(updated) == 0 {
		printer.PrintWarning(fmt.Sprintf("No changes made for version: %s", current))
		return nil
	}

	printer.PrintSuccess(fmt.Sprintf("Version bumped: %s -> %s (%s)", current, next, bumpType))
	for _, path := range updated {
		printer.PrintFaint(fmt.Sprintf("Updated: %s", path))
	}

	return nil
}
