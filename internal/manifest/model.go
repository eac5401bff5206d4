package manifest

import "errors"

// Manifest is the decoded form of a package manifest. Only the fields the
// tool reads are declared; SetVersion edits the raw file bytes instead of
// re-encoding this struct, so nothing else is ever dropped or reformatted.
type Manifest struct {
	Package PackageSection `toml:"package"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

var (
	// ErrPackageSectionMissing reports a manifest without a [package] table.
	ErrPackageSectionMissing = errors.New("missing [package] section")

	// ErrVersionMissing reports a [package] table without a literal string
	// version. Versions inherited from the workspace (version.workspace =
	// true) surface as this error, as do string forms the line rewriter
	// does not handle (multi-line strings, escape sequences): the tool
	// cannot rewrite a value the file does not spell out plainly.
	ErrVersionMissing = errors.New("missing package version")

	// ErrRewriteInvalid reports that a version rewrite would have produced
	// a document that no longer parses with the requested version. The
	// manifest on disk is left untouched.
	ErrRewriteInvalid = errors.New("version rewrite would corrupt manifest")
)
