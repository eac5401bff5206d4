package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/taoky/cargo-jump/internal/jump"
	"github.com/taoky/cargo-jump/internal/ui"
)

type packageRow struct {
	Name         string `json:"name" yaml:"name"`
	Version      string `json:"version" yaml:"version"`
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`
}

// renderPackages writes the package list in the requested output format.
func renderPackages(out io.Writer, format string, pkgs []jump.Package) error {
	rows := make([]packageRow, 0, len(pkgs))
	for _, p := range pkgs {
		rows = append(rows, packageRow{Name: p.Name, Version: p.Version, ManifestPath: p.ManifestPath})
	}

	switch format {
	case "table":
		tbl := ui.NewTable(out, "NAME", "VERSION", "MANIFEST")
		for _, r := range rows {
			tbl.Row(r.Name, r.Version, r.ManifestPath)
		}
		return tbl.Flush()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %q (must be table, json, or yaml)", format)
	}
}
