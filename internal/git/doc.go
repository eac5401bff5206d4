// Package git provides a wrapper around Git CLI commands used by cargo-jump.
// It handles repository root discovery and change detection against a
// baseline revision without depending on other internal packages.
package git
