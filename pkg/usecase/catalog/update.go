package catalog

import (
	"context"

	"github.com/y-ohta/magpie/pkg/model"
)

// Update replaces all fields of the item with a matching ID. Identity is
// preserved; updating a vanished item is a no-op.
func (u *UseCase) Update(ctx context.Context, item *model.InventoryItem) error {
	if len(item.ImageRefs) == 0 {
		item.ImageRefs = []string{model.PlaceholderImageRef}
	}

	if err := item.Validate(); err != nil {
		return err
	}

	return u.repo.Update(ctx, item)
}

// Delete removes the item with a matching ID. No-op if absent.
func (u *UseCase) Delete(ctx context.Context, id model.ItemID) error {
	return u.repo.Delete(ctx, id)
}

// Get retrieves one item, or nil if absent
func (u *UseCase) Get(ctx context.Context, id model.ItemID) *model.InventoryItem {
	return u.repo.Get(ctx, id)
}
