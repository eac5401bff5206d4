package cargo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taoky/cargo-jump/internal/jump"
)

// ReadMetadata loads the workspace inventory for the project at dir by
// running `cargo metadata`. Only workspace members are returned, in cargo's
// reported order. Tool configuration under [workspace.metadata.jump] in the
// root manifest rides along as the exclude pattern list, so the root
// manifest is never parsed a second time.
func ReadMetadata(ctx context.Context, dir string) (*jump.Workspace, error) {
	out, err := output(ctx, dir, "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	return decodeMetadata(out)
}

// metadataDoc is the subset of the cargo metadata JSON document the tool
// consumes.
type metadataDoc struct {
	Packages []struct {
		Name         string `json:"name"`
		Version      string `json:"version"`
		ID           string `json:"id"`
		ManifestPath string `json:"manifest_path"`
	} `json:"packages"`
	WorkspaceMembers []string `json:"workspace_members"`
	WorkspaceRoot    string   `json:"workspace_root"`
	Metadata         struct {
		Jump struct {
			Exclude []string `json:"exclude"`
		} `json:"jump"`
	} `json:"metadata"`
}

func decodeMetadata(data []byte) (*jump.Workspace, error) {
	var doc metadataDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding metadata JSON: %v", ErrMetadataUnavailable, err)
	}

	members := make(map[string]bool, len(doc.WorkspaceMembers))
	for _, id := range doc.WorkspaceMembers {
		members[id] = true
	}

	ws := &jump.Workspace{
		Root:    doc.WorkspaceRoot,
		Exclude: doc.Metadata.Jump.Exclude,
	}
	for _, p := range doc.Packages {
		if !members[p.ID] {
			continue
		}
		ws.Packages = append(ws.Packages, jump.Package{
			Name:         p.Name,
			Version:      p.Version,
			ManifestPath: p.ManifestPath,
		})
	}
	return ws, nil
}
