package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cgnd/kicad-release/pkg/kicad"
	"github.com/cgnd/kicad-release/pkg/raster"
)

// Plot layer sets. These must use the built-in KiCad layer names until
// custom names work in kicad-cli:
// https://gitlab.com/kicad/code/kicad/-/issues/20904
const (
	gerberLayers = "F.Cu,B.Cu,F.Paste,B.Paste,F.Silkscreen,B.Silkscreen,F.Mask,B.Mask,User.Drawings,User.Comments,Edge.Cuts,F.Fab,B.Fab,User.1,User.2"
	frontLayers  = "F.Cu,F.Paste,F.Silkscreen,F.Mask,User.Drawings,User.Comments,Edge.Cuts,F.Fab,User.1"
	backLayers   = "B.Cu,B.Paste,B.Silkscreen,B.Mask,B.Fab,User.2"
)

// Schematic PNG sizing: full resolution for documentation, a fixed-width
// thumbnail for the project README.
const (
	schematicPNGDPI = 300
	thumbnailScale  = 500
)

// releaseCommand creates the release command for generating the full
// artifact set.
func (c *CLI) releaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Generate release files (runs env and check first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRelease(cmd.Context())
		},
	}
}

// runRelease generates the release artifact set. env and check must pass
// first; after that the exports run in a fixed sequence and the first
// failure aborts the rest.
func (c *CLI) runRelease(ctx context.Context) error {
	if err := c.runEnv(ctx); err != nil {
		return err
	}
	if err := c.runCheck(ctx); err != nil {
		return err
	}

	id, paths, err := c.loadProject()
	if err != nil {
		return err
	}
	tool, err := c.tool()
	if err != nil {
		return err
	}

	if err := tool.SchematicExportPDF(ctx, paths.Schematic, paths.SchematicPDF); err != nil {
		return err
	}
	if err := tool.SchematicExportSVG(ctx, paths.Schematic, paths.SchematicSVGDir); err != nil {
		return err
	}

	c.Logger.Infof("Generating %s from %s", paths.SchematicPNG, paths.SchematicSVG)
	if err := c.convert(paths.SchematicSVG, paths.SchematicPNG, raster.Options{DPI: schematicPNGDPI}); err != nil {
		return err
	}
	c.Logger.Infof("Generating %s from %s", paths.SchematicThumb, paths.SchematicSVG)
	if err := c.convert(paths.SchematicSVG, paths.SchematicThumb, raster.Options{Scale: thumbnailScale}); err != nil {
		return err
	}

	if err := tool.SchematicExportBOM(ctx, paths.Schematic, paths.BOM, id.BOMPreset, id.BOMFormatPreset); err != nil {
		return err
	}

	if err := tool.BoardExportGerbers(ctx, paths.Board, paths.GerberDir, gerberLayers); err != nil {
		return err
	}

	// ODB++ export stays disabled: kicad-cli corrupts the archive when
	// compression is enabled.
	// https://gitlab.com/kicad/code/kicad/-/issues/20891

	if err := tool.BoardExportDrill(ctx, paths.Board, paths.DrillDir); err != nil {
		return err
	}
	if err := tool.BoardExportIPCD356(ctx, paths.Board, paths.Netlist); err != nil {
		return err
	}

	if err := tool.BoardExportPDF(ctx, paths.Board, paths.BoardPDFDir, frontLayers, kicad.PDFOptions{BlackAndWhite: true}); err != nil {
		return err
	}
	if err := tool.BoardExportPDF(ctx, paths.Board, paths.BoardPDFDir, backLayers, kicad.PDFOptions{Mirror: true, BlackAndWhite: true}); err != nil {
		return err
	}

	if err := tool.BoardExportPosition(ctx, paths.Board, paths.Position); err != nil {
		return err
	}

	// Board renders stay disabled until kicad-cli can select layers and
	// presets for them.
	// https://gitlab.com/kicad/code/kicad/-/issues/20660
	// https://gitlab.com/kicad/code/kicad/-/issues/20719

	printSuccess("Release artifacts generated")
	printFile(paths.OutputRoot)
	return nil
}
