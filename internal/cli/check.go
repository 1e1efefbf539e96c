package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command for running ERC and DRC.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run KiCad ERC and DRC checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context())
		},
	}
}

// runCheck runs ERC on the schematic and DRC on the board. Reports land
// under the output tree; any violation aborts with the tool's error so the
// process exits non-zero.
func (c *CLI) runCheck(ctx context.Context) error {
	_, paths, err := c.loadProject()
	if err != nil {
		return err
	}
	tool, err := c.tool()
	if err != nil {
		return err
	}

	if err := tool.SchematicERC(ctx, paths.Schematic, paths.ERCReport); err != nil {
		return err
	}
	if err := tool.BoardDRC(ctx, paths.Board, paths.DRCReport); err != nil {
		return err
	}

	printSuccess("ERC and DRC passed")
	printFile(paths.ERCReport)
	printFile(paths.DRCReport)
	return nil
}
