// Package jump implements the version bump pipeline: discover the workspace
// inventory and the files changed since a baseline revision, resolve which
// packages those changes touch, rewrite the version in their manifests, and
// refresh the lockfile when anything was written.
package jump
