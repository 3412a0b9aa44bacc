package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/utils/logging"
)

// Local is a Repository backed by a single JSON snapshot file. The whole
// catalog is rewritten after every mutation. The in-memory sequence is
// authoritative for the running session: a write failure is logged but
// never rolls back the mutation or surfaces to the caller.
type Local struct {
	path string
	core *Memory
}

// NewLocal opens the snapshot at path and loads it. A missing or
// undecodable snapshot degrades to an empty catalog.
func NewLocal(ctx context.Context, path string) (*Local, error) {
	if path == "" {
		return nil, goerr.New("catalog path is required")
	}

	r := &Local{
		path: path,
		core: NewMemory(),
	}
	r.load(ctx)
	return r, nil
}

func (r *Local) load(ctx context.Context) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.From(ctx).Warn("failed to read catalog snapshot, starting empty",
				"path", r.path, "error", err)
		}
		return
	}

	var items []*model.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		logging.From(ctx).Warn("failed to decode catalog snapshot, starting empty",
			"path", r.path, "error", err)
		return
	}

	// A literal null element decodes to a nil item; drop it rather than
	// carrying a value that would panic on first use
	kept := items[:0]
	for _, item := range items {
		if item != nil {
			kept = append(kept, item)
		}
	}

	r.core.items = kept
}

// persist serializes the full sequence and writes it via temp file + rename.
// Failure is logged only: durability is best-effort.
func (r *Local) persist(ctx context.Context) {
	items := r.core.items
	if items == nil {
		items = []*model.InventoryItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		logging.From(ctx).Warn("failed to encode catalog snapshot", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		logging.From(ctx).Warn("failed to create catalog directory",
			"path", r.path, "error", err)
		return
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logging.From(ctx).Warn("failed to write catalog snapshot",
			"path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		logging.From(ctx).Warn("failed to replace catalog snapshot",
			"path", r.path, "error", err)
	}
}

func (r *Local) Items(ctx context.Context) []*model.InventoryItem {
	return r.core.Items(ctx)
}

func (r *Local) Get(ctx context.Context, id model.ItemID) *model.InventoryItem {
	return r.core.Get(ctx, id)
}

func (r *Local) Insert(ctx context.Context, item *model.InventoryItem) error {
	if err := r.core.Insert(ctx, item); err != nil {
		return err
	}
	r.persist(ctx)
	return nil
}

func (r *Local) Update(ctx context.Context, item *model.InventoryItem) error {
	if err := r.core.Update(ctx, item); err != nil {
		return err
	}
	r.persist(ctx)
	return nil
}

func (r *Local) Delete(ctx context.Context, id model.ItemID) error {
	if err := r.core.Delete(ctx, id); err != nil {
		return err
	}
	r.persist(ctx)
	return nil
}
