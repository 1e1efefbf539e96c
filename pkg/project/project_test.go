package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Empty directory: no config file, defaults apply.
	id, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if id.Name != "RPi_Pico_SAO_Host" {
		t.Errorf("Name = %q, want %q", id.Name, "RPi_Pico_SAO_Host")
	}
	if id.VersionMajor != "2" {
		t.Errorf("VersionMajor = %q, want %q", id.VersionMajor, "2")
	}
	if id.Organization != "Common Ground Electronics" {
		t.Errorf("Organization = %q", id.Organization)
	}
	if id.BOMPreset != "Common Ground Electronics BOM" {
		t.Errorf("BOMPreset = %q", id.BOMPreset)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := `
name = "Widget"
version_major = "3"
pcb_rev = "B"
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	id, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if id.Name != "Widget" {
		t.Errorf("Name = %q, want %q", id.Name, "Widget")
	}
	if id.VersionMajor != "3" {
		t.Errorf("VersionMajor = %q, want %q", id.VersionMajor, "3")
	}
	if id.PCBRev != "B" {
		t.Errorf("PCBRev = %q, want %q", id.PCBRev, "B")
	}
	// Untouched fields keep their defaults.
	if id.SCHRev != "A" {
		t.Errorf("SCHRev = %q, want %q", id.SCHRev, "A")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	dir := t.TempDir()
	cfg := `projekt_name = "typo"` + "\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() should reject unknown keys")
	} else if !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("error = %v, want mention of unknown key", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("name = \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}
}
