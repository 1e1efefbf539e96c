package kicad

import (
	"context"
	"strconv"
)

// BoardDRC runs the design rule check on the board, including the
// schematic parity check, writing the report to reportPath.
func (t *Tool) BoardDRC(ctx context.Context, boardPath, reportPath string) error {
	t.logger.Info("Running DRC on the PCB")

	err := t.run(ctx, "pcb drc",
		"pcb", "drc",
		"--output="+reportPath,
		"--schematic-parity",
		"--severity-warning",
		"--severity-error",
		"--exit-code-violations",
		boardPath,
	)
	if err == nil {
		return nil
	}

	if exit, ok := err.(*ExitError); ok && exit.Code == ExitViolations {
		t.logger.Errorf("DRC violations found in the PCB")
		t.logger.Errorf("Check %s for details", reportPath)
		return &ViolationError{Check: "DRC", Code: exit.Code, ReportPath: reportPath}
	}
	t.logError("DRC", err)
	return err
}

// BoardExportGerbers exports the given comma-separated layer list as
// Gerber files into gerberDir.
func (t *Tool) BoardExportGerbers(ctx context.Context, boardPath, gerberDir, layers string) error {
	t.logger.Info("Exporting Gerbers from the PCB")

	err := t.run(ctx, "pcb export gerbers",
		"pcb", "export", "gerbers",
		"--output="+gerberDir,
		"--layers="+layers,
		"--exclude-value",
		"--use-drill-file-origin",
		"--no-protel-ext",
		boardPath,
	)
	if err != nil {
		t.logError("Gerber export from the PCB", err)
	}
	return err
}

// BoardExportODB exports an ODB++ archive to odbPath.
func (t *Tool) BoardExportODB(ctx context.Context, boardPath, odbPath string) error {
	t.logger.Info("Exporting ODB++ from the PCB")

	err := t.run(ctx, "pcb export odb",
		"pcb", "export", "odb",
		"--output="+odbPath,
		boardPath,
	)
	if err != nil {
		t.logError("ODB++ export from the PCB", err)
	}
	return err
}

// PDFOptions configures BoardExportPDF.
type PDFOptions struct {
	// Mirror flips the plot, for back-side documentation.
	Mirror bool
	// Multipage plots all layers into one multi-page file instead of one
	// file per layer. Broken upstream at time of writing:
	// https://gitlab.com/kicad/code/kicad/-/issues/20726
	Multipage bool
	// BlackAndWhite suppresses layer colors.
	BlackAndWhite bool
}

// BoardExportPDF plots the given layer list as PDF under pdfDir. The board
// outline is overlaid on every page.
func (t *Tool) BoardExportPDF(ctx context.Context, boardPath, pdfDir, layers string, opts PDFOptions) error {
	t.logger.Info("Exporting PDF from the PCB")

	args := []string{
		"pcb", "export", "pdf",
		"--output=" + pdfDir,
		"--layers=" + layers,
		"--exclude-value",
		"--include-border-title",
		"--common-layers=Edge.Cuts",
		"--drill-shape-opt=0",
		boardPath,
	}
	if opts.Mirror {
		args = append(args, "--mirror")
	}
	if opts.Multipage {
		args = append(args, "--mode-multipage")
	} else {
		args = append(args, "--mode-separate")
	}
	if opts.BlackAndWhite {
		args = append(args, "--black-and-white")
	}

	err := t.run(ctx, "pcb export pdf", args...)
	if err != nil {
		t.logError("PDF export from the PCB", err)
	}
	return err
}

// BoardExportDrill exports drill files and a drill map into drillDir,
// aligned to the plot origin.
func (t *Tool) BoardExportDrill(ctx context.Context, boardPath, drillDir string) error {
	t.logger.Info("Exporting drill file from the PCB")

	err := t.run(ctx, "pcb export drill",
		"pcb", "export", "drill",
		"--output="+drillDir,
		"--drill-origin=plot",
		"--generate-map",
		boardPath,
	)
	if err != nil {
		t.logError("Drill file export from the PCB", err)
	}
	return err
}

// BoardExportIPCD356 exports the IPC-D-356 test netlist to netlistPath.
func (t *Tool) BoardExportIPCD356(ctx context.Context, boardPath, netlistPath string) error {
	t.logger.Info("Exporting IPC-D-356 netlist from the PCB")

	err := t.run(ctx, "pcb export ipcd356",
		"pcb", "export", "ipcd356",
		"--output="+netlistPath,
		boardPath,
	)
	if err != nil {
		t.logError("IPC-D-356 netlist export from the PCB", err)
	}
	return err
}

// BoardExportPosition exports the component position (centroid) file to
// positionPath, aligned to the drill file origin.
func (t *Tool) BoardExportPosition(ctx context.Context, boardPath, positionPath string) error {
	t.logger.Info("Exporting position file from the PCB")

	err := t.run(ctx, "pcb export pos",
		"pcb", "export", "pos",
		"--output="+positionPath,
		"--use-drill-file-origin",
		boardPath,
	)
	if err != nil {
		t.logError("Position file export from the PCB", err)
	}
	return err
}

// RenderOptions configures BoardRender.
type RenderOptions struct {
	Width       int
	Height      int
	Side        string // "top" or "bottom"
	Background  string // "default", "opaque" or "transparent"
	Zoom        float64
	Perspective bool
}

// DefaultRenderOptions returns the render defaults: 1600x900, top side,
// default background, no perspective.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 1600, Height: 900, Side: "top", Background: "default", Zoom: 1}
}

// BoardRender raytraces a board image to renderPath. Not part of the
// release recipe yet; kicad-cli cannot select layers or presets for
// renders at time of writing:
// https://gitlab.com/kicad/code/kicad/-/issues/20660
// https://gitlab.com/kicad/code/kicad/-/issues/20719
func (t *Tool) BoardRender(ctx context.Context, boardPath, renderPath string, opts RenderOptions) error {
	t.logger.Info("Generating render from the PCB")

	args := []string{
		"pcb", "render",
		"--output=" + renderPath,
		"--width=" + strconv.Itoa(opts.Width),
		"--height=" + strconv.Itoa(opts.Height),
		"--side=" + opts.Side,
		"--background=" + opts.Background,
		"--zoom=" + strconv.FormatFloat(opts.Zoom, 'f', -1, 64),
		boardPath,
	}
	if opts.Perspective {
		args = append(args, "--perspective")
	}

	err := t.run(ctx, "pcb render", args...)
	if err != nil {
		t.logError("Render generation from the PCB", err)
	}
	return err
}
