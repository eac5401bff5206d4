package manifest

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
[package]
name = "demo"
version = "0.4.2"
edition = "2021"

[dependencies]
serde = "1.0"
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q, want %q", m.Package.Name, "demo")
	}
	if m.Package.Version != "0.4.2" {
		t.Errorf("version = %q, want %q", m.Package.Version, "0.4.2")
	}
}

func TestParse_missingPackageSection(t *testing.T) {
	data := []byte(`
[dependencies]
serde = "1.0"
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestParse_missingVersion(t *testing.T) {
	data := []byte(`
[package]
name = "demo"
edition = "2021"
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrVersionMissing) {
		t.Fatalf("err = %v, want ErrVersionMissing", err)
	}
}

func TestParse_workspaceInheritedVersion(t *testing.T) {
	// version.workspace = true carries no literal value to rewrite.
	data := []byte(`
[package]
name = "demo"
version.workspace = true
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrVersionMissing) {
		t.Fatalf("err = %v, want ErrVersionMissing", err)
	}
}

func TestParse_malformedTOML(t *testing.T) {
	data := []byte(`[package
name = "demo"
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Cargo.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
