package cargo

import (
	"context"
	"errors"
	"testing"

	"github.com/taoky/cargo-jump/internal/testutil"
)

const sampleMetadata = `{
  "packages": [
    {
      "name": "alpha",
      "version": "0.1.0",
      "id": "path+file:///ws/crates/alpha#0.1.0",
      "manifest_path": "/ws/crates/alpha/Cargo.toml"
    },
    {
      "name": "beta",
      "version": "0.2.0",
      "id": "path+file:///ws/crates/beta#0.2.0",
      "manifest_path": "/ws/crates/beta/Cargo.toml"
    },
    {
      "name": "vendored",
      "version": "1.0.0",
      "id": "path+file:///elsewhere/vendored#1.0.0",
      "manifest_path": "/elsewhere/vendored/Cargo.toml"
    }
  ],
  "workspace_members": [
    "path+file:///ws/crates/alpha#0.1.0",
    "path+file:///ws/crates/beta#0.2.0"
  ],
  "workspace_root": "/ws",
  "metadata": {
    "jump": {
      "exclude": ["bench-*"]
    }
  }
}`

func TestDecodeMetadata(t *testing.T) {
	ws, err := decodeMetadata([]byte(sampleMetadata))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.Root != "/ws" {
		t.Errorf("root = %q, want /ws", ws.Root)
	}
	if len(ws.Packages) != 2 {
		t.Fatalf("got %d packages, want 2 (non-members filtered out)", len(ws.Packages))
	}
	if ws.Packages[0].Name != "alpha" || ws.Packages[1].Name != "beta" {
		t.Errorf("packages = %v, want cargo's order alpha, beta", ws.Packages)
	}
	if ws.Packages[0].Version != "0.1.0" {
		t.Errorf("alpha version = %q, want 0.1.0", ws.Packages[0].Version)
	}
	if ws.Packages[0].ManifestPath != "/ws/crates/alpha/Cargo.toml" {
		t.Errorf("alpha manifest path = %q", ws.Packages[0].ManifestPath)
	}
	if len(ws.Exclude) != 1 || ws.Exclude[0] != "bench-*" {
		t.Errorf("exclude = %v, want [bench-*]", ws.Exclude)
	}
}

func TestDecodeMetadata_noToolConfig(t *testing.T) {
	// cargo emits "metadata": null when the root manifest carries no
	// [workspace.metadata] table.
	doc := `{"packages": [], "workspace_members": [], "workspace_root": "/ws", "metadata": null}`

	ws, err := decodeMetadata([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ws.Exclude) != 0 {
		t.Errorf("exclude = %v, want none", ws.Exclude)
	}
}

func TestDecodeMetadata_badJSON(t *testing.T) {
	_, err := decodeMetadata([]byte("not json"))
	if !errors.Is(err, ErrMetadataUnavailable) {
		t.Fatalf("err = %v, want ErrMetadataUnavailable", err)
	}
}

func TestReadMetadata(t *testing.T) {
	testutil.RequireCargo(t)
	dir := testutil.CreateWorkspaceRepo(t)

	ws, err := ReadMetadata(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.Root != dir {
		t.Errorf("root = %q, want %q", ws.Root, dir)
	}
	var names []string
	for _, p := range ws.Packages {
		names = append(names, p.Name)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("packages = %v, want [alpha beta]", names)
	}
}

func TestReadMetadata_notAProject(t *testing.T) {
	testutil.RequireCargo(t)

	_, err := ReadMetadata(context.Background(), t.TempDir())
	if !errors.Is(err, ErrMetadataUnavailable) {
		t.Fatalf("err = %v, want ErrMetadataUnavailable", err)
	}
}

func TestIsInstalled(t *testing.T) {
	testutil.RequireCargo(t)
	if !IsInstalled() {
		t.Error("expected cargo on PATH")
	}
}

func TestIsInstalled_emptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	if IsInstalled() {
		t.Error("IsInstalled() = true with an empty PATH")
	}
}
