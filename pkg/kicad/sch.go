package kicad

import "context"

// SchematicERC runs the electrical rule check on the schematic, writing
// the report to reportPath. Violations surface as a *ViolationError after
// a console pointer at the report.
func (t *Tool) SchematicERC(ctx context.Context, schematicPath, reportPath string) error {
	t.logger.Info("Running ERC on the schematic")

	err := t.run(ctx, "sch erc",
		"sch", "erc",
		"--output="+reportPath,
		"--severity-warning",
		"--severity-error",
		"--exit-code-violations",
		schematicPath,
	)
	if err == nil {
		return nil
	}

	if exit, ok := err.(*ExitError); ok && exit.Code == ExitViolations {
		t.logger.Errorf("ERC violations found in the schematic")
		t.logger.Errorf("Check %s for details", reportPath)
		return &ViolationError{Check: "ERC", Code: exit.Code, ReportPath: reportPath}
	}
	// Unknown codes should not happen unless kicad-cli grows new ones.
	t.logError("ERC", err)
	return err
}

// SchematicExportPDF exports the schematic as a monochrome PDF.
func (t *Tool) SchematicExportPDF(ctx context.Context, schematicPath, pdfPath string) error {
	t.logger.Info("Exporting Schematic PDF")

	err := t.run(ctx, "sch export pdf",
		"sch", "export", "pdf",
		"--output="+pdfPath,
		"--black-and-white",
		"--no-background-color",
		schematicPath,
	)
	if err != nil {
		t.logError("PDF export from the schematic", err)
	}
	return err
}

// SchematicExportSVG exports the schematic as monochrome SVG files into
// svgDir. kicad-cli names the files after the schematic sheets.
func (t *Tool) SchematicExportSVG(ctx context.Context, schematicPath, svgDir string) error {
	t.logger.Info("Exporting Schematic SVG")

	err := t.run(ctx, "sch export svg",
		"sch", "export", "svg",
		"--output="+svgDir,
		"--black-and-white",
		"--no-background-color",
		schematicPath,
	)
	if err != nil {
		t.logError("SVG export from the schematic", err)
	}
	return err
}

// SchematicExportBOM exports the assembly bill of materials as CSV using
// the named export presets saved in the schematic.
func (t *Tool) SchematicExportBOM(ctx context.Context, schematicPath, bomPath, preset, formatPreset string) error {
	t.logger.Info("Exporting assembly BOM")

	err := t.run(ctx, "sch export bom",
		"sch", "export", "bom",
		"--output="+bomPath,
		"--preset="+preset,
		"--format-preset="+formatPreset,
		schematicPath,
	)
	if err != nil {
		t.logError("BOM export from the schematic", err)
	}
	return err
}
