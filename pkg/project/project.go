// Package project holds the identity of the hardware project being released
// and derives every input and output path from it.
//
// The identity is a single immutable value constructed once at startup.
// Defaults describe the RPi Pico SAO Host board; a kicad-release.toml file
// next to the design files can override individual fields.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the optional identity override file looked up in the
// project directory.
const ConfigFile = "kicad-release.toml"

// Identity describes the project being built: who owns it, what it is
// called, and the part numbers and revisions of its release artifacts.
type Identity struct {
	Organization    string `toml:"organization"`
	OrganizationURL string `toml:"organization_url"`
	License         string `toml:"license"`

	Name         string `toml:"name"`
	Description  string `toml:"description"`
	VersionMajor string `toml:"version_major"`

	PCBPartNumber string `toml:"pcb_part_number"`
	PCBRev        string `toml:"pcb_rev"`
	SCHPartNumber string `toml:"sch_part_number"`
	SCHRev        string `toml:"sch_rev"`
	PCAPartNumber string `toml:"pca_part_number"`
	PCARev        string `toml:"pca_rev"`

	// BOMPreset and BOMFormatPreset name the KiCad export presets used for
	// the bill-of-materials CSV. They must match presets saved in the
	// schematic file.
	BOMPreset       string `toml:"bom_preset"`
	BOMFormatPreset string `toml:"bom_format_preset"`
}

// Defaults returns the built-in identity for the RPi Pico SAO Host project.
func Defaults() Identity {
	return Identity{
		Organization:    "Common Ground Electronics",
		OrganizationURL: "https://cgnd.dev",
		License:         "CERN-OHL-P-2.0",
		Name:            "RPi_Pico_SAO_Host",
		Description:     "Raspberry Pi Pico SAO Host",
		VersionMajor:    "2",
		PCBPartNumber:   "100092",
		PCBRev:          "A",
		SCHPartNumber:   "100093",
		SCHRev:          "A",
		PCAPartNumber:   "100094",
		PCARev:          "A",
		BOMPreset:       "Common Ground Electronics BOM",
		BOMFormatPreset: "CSV",
	}
}

// Load returns the project identity for dir. If dir contains a
// kicad-release.toml file its fields override the defaults; unknown keys
// are rejected so typos fail loudly.
func Load(dir string) (Identity, error) {
	id := Defaults()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return id, nil
	}

	meta, err := toml.DecodeFile(path, &id)
	if err != nil {
		return Identity{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Identity{}, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	return id, nil
}
