package main

import (
	"context"

	"github.com/taoky/cargo-jump/internal/cargo"
	"github.com/taoky/cargo-jump/internal/git"
	"github.com/taoky/cargo-jump/internal/jump"
)

// newRunner binds the bump pipeline to the real collaborators: git for the
// change history, cargo for the workspace inventory and the lockfile
// refresh. dir is where both tools run their discovery.
func newRunner(dir string) *jump.Runner {
	return &jump.Runner{
		Source:    gitSource{dir: dir},
		Inventory: cargoInventory{dir: dir},
		Locks:     cargoLocks{dir: dir},
	}
}

type gitSource struct{ dir string }

func (s gitSource) Toplevel(ctx context.Context) (string, error) {
	return git.Toplevel(ctx, s.dir)
}

func (s gitSource) ChangedFiles(ctx context.Context, toplevel, since string) ([]string, error) {
	return git.ChangedFiles(ctx, toplevel, since)
}

func (s gitSource) TrackedFiles(ctx context.Context, toplevel string) ([]string, error) {
	return git.TrackedFiles(ctx, toplevel)
}

type cargoInventory struct{ dir string }

func (c cargoInventory) Load(ctx context.Context) (*jump.Workspace, error) {
	return cargo.ReadMetadata(ctx, c.dir)
}

type cargoLocks struct{ dir string }

func (c cargoLocks) Refresh(ctx context.Context) error {
	return cargo.Fetch(ctx, c.dir)
}
