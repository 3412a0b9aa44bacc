package repository

import (
	"context"

	"github.com/y-ohta/magpie/pkg/model"
)

// Repository defines the interface for catalog persistence. The catalog is
// a flat, order-preserving sequence of items, most-recent-first.
type Repository interface {
	// Items returns a snapshot copy of the full catalog sequence
	Items(ctx context.Context) []*model.InventoryItem

	// Get retrieves an item by ID, or nil if absent
	Get(ctx context.Context, id model.ItemID) *model.InventoryItem

	// Insert prepends a new item to the sequence
	Insert(ctx context.Context, item *model.InventoryItem) error

	// Update replaces the item with a matching ID. Updating an absent
	// item is a no-op, not an error.
	Update(ctx context.Context, item *model.InventoryItem) error

	// Delete removes the item with a matching ID. No-op if absent.
	Delete(ctx context.Context, id model.ItemID) error
}
