package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRenderPackages_unknownFormat(t *testing.T) {
	err := renderPackages(io.Discard, "xml", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("err = %v, want unknown output format", err)
	}
}

func TestRenderPackages_jsonEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPackages(&buf, "json", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty list = %q, want []", got)
	}
}
