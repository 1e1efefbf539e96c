package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// envCommand creates the env command for printing project environment info.
func (c *CLI) envCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print project environment info",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd.Context())
		},
	}
}

// runEnv prints the project identity and the KiCad version information.
func (c *CLI) runEnv(ctx context.Context) error {
	id, _, err := c.loadProject()
	if err != nil {
		return err
	}

	printKeyValue("project", id.Name)
	printKeyValue("description", id.Description)
	printKeyValue("version", "v"+id.VersionMajor)
	printKeyValue("organization", id.Organization)
	printKeyValue("license", id.License)

	tool, err := c.tool()
	if err != nil {
		printError("kicad-cli not found; is KiCad installed?")
		return err
	}
	printKeyValue("kicad-cli", tool.Path())

	return tool.Version(ctx)
}
