package jump

// Resolve returns the packages owning at least one of the changed files.
// Input order is preserved and each package appears at most once, no matter
// how many of its files changed. The result is deterministic for a given
// input; nothing is read from disk.
func Resolve(changed []string, pkgs []Package) []Package {
	var affected []Package
	for _, p := range pkgs {
		dir := p.Dir()
		for _, f := range changed {
			if Within(dir, f) {
				affected = append(affected, p)
				break
			}
		}
	}
	return affected
}
