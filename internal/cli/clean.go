package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgnd/kicad-release/pkg/fsutil"
)

// cleanCommand creates the clean command for removing generated files.
func (c *CLI) cleanCommand() *cobra.Command {
	var backups, cacheFiles, all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runClean(backups, cacheFiles, all)
		},
	}

	cmd.Flags().BoolVar(&backups, "kicad-backups", false, "also remove the KiCad backups directory")
	cmd.Flags().BoolVar(&cacheFiles, "kicad-cache-files", false, "also remove KiCad cache files")
	cmd.Flags().BoolVar(&all, "all", false, "remove the output tree, backups and cache files")

	return cmd
}

// runClean removes the output tree and, depending on the flags, the KiCad
// backups directory and footprint cache. Every removal is recursive and
// tolerant of absence, so clean is safe to run on a fresh checkout.
func (c *CLI) runClean(backups, cacheFiles, all bool) error {
	_, paths, err := c.loadProject()
	if err != nil {
		return err
	}

	targets := []string{paths.OutputRoot}
	if backups || all {
		targets = append(targets, paths.BackupsDir)
	}
	if cacheFiles || all {
		targets = append(targets, paths.FootprintCache)
	}

	for _, target := range targets {
		c.Logger.Debugf("removing %s", target)
		if err := fsutil.Remove(target, fsutil.RemoveOptions{Recursive: true, Force: true}); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
		printDetail("removed %s", target)
	}

	printSuccess("Cleaned generated files")
	return nil
}
