package manifest

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
)

var (
	tableLine   = regexp.MustCompile(`^\s*\[\[?\s*([^][]+?)\s*\]?\]`)
	versionLine = regexp.MustCompile(`^(\s*version\s*=\s*)("[^"]*"|'[^']*')(\s*(?:#.*)?)$`)
)

// SetVersion rewrites the [package] version value in the manifest at path.
// Only the value itself changes: comments, key order, whitespace, quote
// style and every unrelated byte survive as-is. Writing a version the file
// already carries leaves it byte-identical. The rewritten document is
// parsed again before the file is replaced; if it no longer carries
// newVersion the write is abandoned with ErrRewriteInvalid.
func SetVersion(path, newVersion string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace inventory
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	if _, err := Parse(data); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	out, err := setVersionBytes(data, newVersion)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	if check, err := Parse(out); err != nil || check.Package.Version != newVersion {
		return fmt.Errorf("manifest %s: %w", path, ErrRewriteInvalid)
	}
	if err := os.WriteFile(path, out, 0644); err != nil { //nolint:gosec // manifests stay readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// setVersionBytes replaces the value on the first `version = "…"` line
// inside the [package] table. Table headers reset the search, so a version
// key under [dependencies] or [package.metadata] never matches. Only plain
// single-line quoted values match: multi-line strings and values carrying
// escape sequences fall through to ErrVersionMissing instead of being
// mangled. Line endings are carried over from the original line.
func setVersionBytes(data []byte, newVersion string) ([]byte, error) {
	lines := bytes.SplitAfter(data, []byte("\n"))
	inPackage := false
	seenPackage := false
	for i, line := range lines {
		content := bytes.TrimRight(line, "\r\n")
		if m := tableLine.FindSubmatch(content); m != nil {
			inPackage = string(m[1]) == "package"
			if inPackage {
				seenPackage = true
			}
			continue
		}
		if !inPackage {
			continue
		}
		m := versionLine.FindSubmatch(content)
		if m == nil {
			continue
		}
		quote := m[2][:1]
		eol := line[len(content):]
		var b bytes.Buffer
		b.Write(m[1])
		b.Write(quote)
		b.WriteString(newVersion)
		b.Write(quote)
		b.Write(m[3])
		b.Write(eol)
		lines[i] = b.Bytes()
		return bytes.Join(lines, nil), nil
	}
	if !seenPackage {
		return nil, ErrPackageSectionMissing
	}
	return nil, ErrVersionMissing
}
