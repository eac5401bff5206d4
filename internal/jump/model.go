package jump

import (
	"path/filepath"
	"strings"
)

// Package is one workspace member as reported by the inventory.
type Package struct {
	Name         string
	Version      string
	ManifestPath string
}

// Dir returns the directory owning the package: the parent of its manifest.
// Every file under this directory belongs to the package.
func (p Package) Dir() string {
	return filepath.Dir(p.ManifestPath)
}

// Workspace is the inventory snapshot: the workspace root, the member
// packages in the inventory's reported order, and the exclude patterns
// configured in the workspace metadata.
type Workspace struct {
	Root     string
	Packages []Package
	Exclude  []string
}

// Within reports whether path is dir or lies under dir. Containment is
// decided per path component, so /ws/foo-bar/x is not within /ws/foo.
func Within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
