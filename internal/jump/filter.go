package jump

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter narrows the inventory before resolution: when only is non-empty,
// keep just those package names; then drop names in skip; then drop names
// matching any exclude pattern. Order is preserved.
func Filter(pkgs []Package, only, skip []string, exclude []glob.Glob) []Package {
	onlySet := toSet(only)
	skipSet := toSet(skip)

	var result []Package
	for _, p := range pkgs {
		if len(onlySet) > 0 && !onlySet[p.Name] {
			continue
		}
		if skipSet[p.Name] {
			continue
		}
		if matchesAny(exclude, p.Name) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// CompileExcludes compiles the exclude patterns from the workspace
// configuration into glob matchers.
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
