// Package bump implements the explicit bump subcommands that bypass the
// commit classifier.
package bump

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/operations"
	"github.com/indaco/verbump/internal/printer"
	"github.com/indaco/verbump/internal/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "bump" parent command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump the version explicitly (patch, minor, major)",
		UsageText: "verbump bump <patch|minor|major>",
		Commands: []*cli.Command{
			subCmd(cfg, semver.BumpPatch, "Bump the patch version (x.y.Z)"),
			subCmd(cfg, semver.BumpMinor, "Bump the minor version (x.Y.0)"),
			subCmd(cfg, semver.BumpMajor, "Bump the major version (X.0.0)"),
		},
	}
}

func subCmd(cfg *config.Config, bumpType semver.BumpType, usage string) *cli.Command {
	return &cli.Command{
		Name:  bumpType.String(),
		Usage: usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Execute(ctx, cfg, bumpType)
		},
	}
}

// Execute bumps the canonical version by the given type and propagates it
// to every configured manifest.
func Execute(ctx context.Context, cfg *config.Config, bumpType semver.BumpType) error {
	syncer := operations.NewSyncer(core.NewOSFileSystem())

	current, err := syncer.CurrentVersion(ctx, cfg)
	if err != nil {
		return err
	}

	next := current.Bump(bumpType)

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
