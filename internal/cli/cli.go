// Package cli implements the kicad-release command-line interface.
//
// The commands wrap a fixed release workflow for a KiCad hardware project:
//   - clean: remove generated files
//   - env: print project and tool information
//   - check: run ERC and DRC
//   - release: generate the full release artifact set
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cgnd/kicad-release/pkg/buildinfo"
	"github.com/cgnd/kicad-release/pkg/kicad"
	"github.com/cgnd/kicad-release/pkg/project"
	"github.com/cgnd/kicad-release/pkg/raster"
)

// appName is the application name used for the root command and display.
const appName = "kicad-release"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Seams for tests: nil means the real implementation.
	runner  kicad.Runner
	locate  func() (string, error)
	convert func(src, dst string, opts raster.Options) error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		locate:  kicad.Locate,
		convert: raster.Convert,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Release automation for the KiCad project in the current directory",
		Long:         `kicad-release drives kicad-cli to validate a KiCad schematic and board and to generate the release artifact set (PDFs, images, Gerbers, drill files, netlist, BOM, position file).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.envCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.releaseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadProject reads the project identity from the current directory and
// derives the path tree from it.
func (c *CLI) loadProject() (project.Identity, *project.Paths, error) {
	id, err := project.Load(".")
	if err != nil {
		return project.Identity{}, nil, fmt.Errorf("load project config: %w", err)
	}
	return id, project.NewPaths(id), nil
}

// tool locates kicad-cli and returns a handle on it.
func (c *CLI) tool() (*kicad.Tool, error) {
	path, err := c.locate()
	if err != nil {
		return nil, err
	}
	if c.runner != nil {
		return kicad.NewWithRunner(path, c.Logger, c.runner), nil
	}
	return kicad.New(path, c.Logger), nil
}
