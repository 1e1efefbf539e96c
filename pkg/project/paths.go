package project

import (
	"fmt"
	"path/filepath"
)

// Paths is the full input/output path tree for one release. Every field is
// a pure function of the Identity it was derived from; nothing here touches
// the filesystem or depends on file contents.
type Paths struct {
	// Design file inputs, relative to the project directory.
	Schematic string
	Board     string

	// OutputRoot is the version-stamped directory all artifacts live under.
	OutputRoot string

	// Check reports.
	ReportDir string
	ERCReport string
	DRCReport string

	// PCA (assembly) deliverables.
	PCADir          string
	SchematicDir    string
	SchematicPDF    string
	SchematicSVGDir string
	SchematicSVG    string
	SchematicPNG    string
	SchematicThumb  string
	BOMDir          string
	BOM             string
	PCARenderDir    string

	// PCB (bare board) deliverables.
	PCBDir      string
	GerberDir   string
	ODBArchive  string
	BoardPDFDir string
	DrillDir    string
	Netlist     string
	Position    string

	// Board-level renders (catalog capability, unused by release).
	BoardRenderDir string

	// Tool litter removed by clean.
	BackupsDir     string
	FootprintCache string
}

// NewPaths derives the output path tree from the project identity.
func NewPaths(id Identity) *Paths {
	stamp := fmt.Sprintf("%s_v%s", id.Name, id.VersionMajor)

	outputRoot := filepath.Join("output", stamp)
	reportDir := filepath.Join(outputRoot, "Reports")

	pcaDir := filepath.Join(outputRoot, fmt.Sprintf("%s_PCA_%s_Rev_%s", stamp, id.PCAPartNumber, id.PCARev))
	schDir := filepath.Join(pcaDir, "Schematic")
	bomDir := filepath.Join(pcaDir, "BOM")
	schBase := fmt.Sprintf("%s_Schematic_%s_Rev_%s", stamp, id.SCHPartNumber, id.SCHRev)
	svgDir := filepath.Join(schDir, schBase+"_SVG")

	pcbDir := filepath.Join(outputRoot, fmt.Sprintf("%s_PCB_%s_Rev_%s", stamp, id.PCBPartNumber, id.PCBRev))

	return &Paths{
		Schematic: id.Name + ".kicad_sch",
		Board:     id.Name + ".kicad_pcb",

		OutputRoot: outputRoot,

		ReportDir: reportDir,
		ERCReport: filepath.Join(reportDir, stamp+"_ERC_report.txt"),
		DRCReport: filepath.Join(reportDir, stamp+"_DRC_report.txt"),

		PCADir:          pcaDir,
		SchematicDir:    schDir,
		SchematicPDF:    filepath.Join(schDir, schBase+".pdf"),
		SchematicSVGDir: svgDir,
		// kicad-cli names the SVG after the schematic, not the output dir.
		SchematicSVG:   filepath.Join(svgDir, id.Name+".svg"),
		SchematicPNG:   filepath.Join(schDir, schBase+".png"),
		SchematicThumb: filepath.Join(schDir, schBase+"_thumbnail.png"),
		BOMDir:         bomDir,
		BOM:            filepath.Join(bomDir, fmt.Sprintf("%s_ECAD_BOM_%s_Rev_%s.csv", stamp, id.PCAPartNumber, id.PCARev)),
		PCARenderDir:   filepath.Join(pcaDir, "Renders"),

		PCBDir:      pcbDir,
		GerberDir:   filepath.Join(pcbDir, "Gerbers"),
		ODBArchive:  filepath.Join(pcbDir, "ODB++", id.Name+".zip"),
		BoardPDFDir: filepath.Join(pcbDir, "PDF"),
		DrillDir:    filepath.Join(pcbDir, "Drill_Files"),
		Netlist:     filepath.Join(pcbDir, "Netlist", id.Name+".d356"),
		Position:    filepath.Join(pcbDir, "Position", id.Name+".pos"),

		BoardRenderDir: filepath.Join(outputRoot, "Renders"),

		BackupsDir:     id.Name + "-backups",
		FootprintCache: "fp-info-cache",
	}
}
