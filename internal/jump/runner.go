package jump

import (
	"context"
	"errors"
	"fmt"

	slogcontext "github.com/veqryn/slog-context"

	"github.com/taoky/cargo-jump/internal/manifest"
)

// ErrOutsideRepository reports that the workspace root is not contained in
// the repository the change history comes from, so that history cannot be
// trusted to cover the workspace.
var ErrOutsideRepository = errors.New("workspace is outside the repository")

// ChangeSource answers which files changed, from version control.
type ChangeSource interface {
	// Toplevel returns the absolute path of the repository root.
	Toplevel(ctx context.Context) (string, error)
	// ChangedFiles returns the absolute paths of files that differ between
	// the given revision and the current head.
	ChangedFiles(ctx context.Context, toplevel, since string) ([]string, error)
	// TrackedFiles returns the absolute paths of every tracked file. Used
	// as the change set when no baseline revision is given.
	TrackedFiles(ctx context.Context, toplevel string) ([]string, error)
}

// Inventory loads the workspace membership snapshot.
type Inventory interface {
	Load(ctx context.Context) (*Workspace, error)
}

// LockRefresher brings the lockfile back in sync after manifests changed.
type LockRefresher interface {
	Refresh(ctx context.Context) error
}

// Runner wires the collaborators and executes the bump pipeline. All work
// is sequential; a Runner issues one external query or write at a time.
type Runner struct {
	Source    ChangeSource
	Inventory Inventory
	Locks     LockRefresher
}

// PlanOptions controls discovery and resolution.
type PlanOptions struct {
	// OldTag is the baseline revision. Empty means no baseline: every
	// tracked file counts as changed.
	OldTag string
	// Only and Skip narrow the inventory by exact package name.
	Only []string
	Skip []string
}

// Plan is the resolved intent: which packages would be bumped and why.
type Plan struct {
	Workspace *Workspace
	Toplevel  string
	// Changed holds the absolute paths treated as changed.
	Changed []string
	// Affected holds the packages owning at least one changed file, in
	// inventory order.
	Affected []Package
}

// Plan loads the inventory, verifies the workspace sits inside the
// repository, collects the changed files and resolves the affected set.
// It performs no writes.
func (r *Runner) Plan(ctx context.Context, opts PlanOptions) (*Plan, error) {
	logger := slogcontext.FromCtx(ctx)

	ws, err := r.Inventory.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("workspace inventory loaded", "root", ws.Root, "packages", len(ws.Packages))

	excludes, err := CompileExcludes(ws.Exclude)
	if err != nil {
		return nil, err
	}

	top, err := r.Source.Toplevel(ctx)
	if err != nil {
		return nil, err
	}
	if !Within(top, ws.Root) {
		return nil, fmt.Errorf("%w: workspace root %s is not under %s", ErrOutsideRepository, ws.Root, top)
	}

	var changed []string
	if opts.OldTag != "" {
		changed, err = r.Source.ChangedFiles(ctx, top, opts.OldTag)
	} else {
		logger.Warn("no old tag given, treating every tracked file as changed")
		changed, err = r.Source.TrackedFiles(ctx, top)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("changed files collected", "count", len(changed))

	members := Filter(ws.Packages, opts.Only, opts.Skip, excludes)
	affected := Resolve(changed, members)

	affectedSet := make(map[string]bool, len(affected))
	for _, p := range affected {
		affectedSet[p.Name] = true
	}
	for _, p := range members {
		logger.Debug("package resolved", "package", p.Name, "affected", affectedSet[p.Name])
	}

	return &Plan{Workspace: ws, Toplevel: top, Changed: changed, Affected: affected}, nil
}

// ApplyOptions controls the write phase.
type ApplyOptions struct {
	NewVersion string
	// DryRun reports intended writes without touching any file and
	// without refreshing the lockfile.
	DryRun bool
}

// Result summarizes what Apply did.
type Result struct {
	// Changed is true when at least one manifest was written.
	Changed bool
	// Refreshed is true when the lockfile was refreshed.
	Refreshed bool
}

// Apply writes the new version into every affected manifest, one at a time
// in plan order, then refreshes the lockfile if anything was written. The
// first write error aborts the run; manifests already written stay written
// and the lockfile is left alone.
func (r *Runner) Apply(ctx context.Context, plan *Plan, opts ApplyOptions) (*Result, error) {
	logger := slogcontext.FromCtx(ctx)
	res := &Result{}

	for _, p := range plan.Affected {
		logger.Info("setting package version", "package", p.Name, "from", p.Version, "to", opts.NewVersion)
		if opts.DryRun {
			logger.Info("dry run, manifest not written", "manifest", p.ManifestPath)
			continue
		}
		if err := manifest.SetVersion(p.ManifestPath, opts.NewVersion); err != nil {
			return res, fmt.Errorf("package %s: %w", p.Name, err)
		}
		res.Changed = true
	}

	if !res.Changed {
		logger.Debug("no manifest written, lockfile left alone")
		return res, nil
	}

	logger.Info("refreshing lockfile")
	if err := r.Locks.Refresh(ctx); err != nil {
		return res, err
	}
	res.Refreshed = true
	return res, nil
}
