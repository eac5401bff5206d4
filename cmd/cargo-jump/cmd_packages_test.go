package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/taoky/cargo-jump/internal/testutil"
)

func TestRunPackages_table(t *testing.T) {
	testutil.RequireCargo(t)
	dir := testutil.CreateWorkspaceRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--dir", dir, "packages"})
	if err := root.Execute(); err != nil {
		t.Fatalf("packages failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "VERSION", "MANIFEST", "alpha", "beta"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPackages_json(t *testing.T) {
	testutil.RequireCargo(t)
	dir := testutil.CreateWorkspaceRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--dir", dir, "packages", "--output", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("packages --output json failed: %v", err)
	}

	var rows []packageRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(rows))
	}
	if rows[0].Name != "alpha" || rows[0].Version != "0.1.0" {
		t.Errorf("rows[0] = %+v, want alpha 0.1.0", rows[0])
	}
	if rows[1].Name != "beta" {
		t.Errorf("rows[1] = %+v, want beta", rows[1])
	}
}

func TestRunPackages_yaml(t *testing.T) {
	testutil.RequireCargo(t)
	dir := testutil.CreateWorkspaceRepo(t)

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--dir", dir, "packages", "--output", "yaml"})
	if err := root.Execute(); err != nil {
		t.Fatalf("packages --output yaml failed: %v", err)
	}

	var rows []packageRow
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid YAML output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(rows))
	}
	if rows[0].Name != "alpha" {
		t.Errorf("rows[0] = %+v, want alpha", rows[0])
	}
}
