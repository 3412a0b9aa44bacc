package catalog

import (
	"context"

	"github.com/y-ohta/magpie/pkg/model"
)

// Insert adds a new item at the head of the catalog. An item without any
// image reference gets the placeholder so a persisted item always carries
// at least one.
func (u *UseCase) Insert(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	if item.ID == "" {
		item.ID = model.NewItemID()
	}
	if len(item.ImageRefs) == 0 {
		item.ImageRefs = []string{model.PlaceholderImageRef}
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
