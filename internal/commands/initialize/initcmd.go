// Package initialize implements the command that writes a starter
// configuration file.
package initialize

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default " + config.DefaultConfigFile + " to the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Execute(ctx, core.NewOSFileSystem(), config.DefaultConfigFile, cmd.Bool("force"))
		},
	}
}

// Execute writes the default configuration to configFile. An existing
// file is never overwritten unless force is set.
func Execute(ctx context.Context, fsys core.FileSystem, configFile string, force bool) error {
	if _, err := fsys.Stat(ctx, configFile); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", configFile)
	}

	saver := config.NewSaver(nil)
	if err := saver.SaveTo(config.Default(), configFile); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", configFile))
	return nil
}
