// Package show implements the command that prints the canonical version.
package show

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/operations"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the current version from the canonical manifest",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			syncer := operations.NewSyncer(core.NewOSFileSystem())

			current, err := syncer.CurrentVersion(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Println(current.String())
			return nil
		},
	}
}
