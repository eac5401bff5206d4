package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads and validates a Cargo.toml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace inventory
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses Cargo.toml content and checks that a version rewrite could
// succeed: the [package] table must exist and carry a literal string
// version.
func Parse(data []byte) (*Manifest, error) {
	var doc manifestDoc
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}
	if !meta.IsDefined("package") {
		return nil, ErrPackageSectionMissing
	}
	version, ok := doc.Package.Version.(string)
	if !ok {
		return nil, ErrVersionMissing
	}
	return &Manifest{Package: PackageSection{Name: doc.Package.Name, Version: version}}, nil
}

// manifestDoc tolerates any shape for the version value, so that
// non-string values (such as workspace inheritance tables) classify as
// ErrVersionMissing instead of a decode failure.
type manifestDoc struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
	} `toml:"package"`
}
