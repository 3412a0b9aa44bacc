package repository

import (
	"context"

	"github.com/y-ohta/magpie/pkg/model"
)

// Memory is an in-memory Repository with no durable backing. Used by tests
// and as the embedded core of the local file store.
type Memory struct {
	items []*model.InventoryItem
}

// NewMemory creates an empty in-memory repository
func NewMemory() *Memory {
	return &Memory{}
}

func (r *Memory) Items(ctx context.Context) []*model.InventoryItem {
	snapshot := make([]*model.InventoryItem, len(r.items))
	for i, item := range r.items {
		snapshot[i] = item.Clone()
	}
	return snapshot
}

func (r *Memory) Get(ctx context.Context, id model.ItemID) *model.InventoryItem {
	for _, item := range r.items {
		if item.ID == id {
			return item.Clone()
		}
	}
	return nil
}

func (r *Memory) Insert(ctx context.Context, item *model.InventoryItem) error {
	r.items = append([]*model.InventoryItem{item.Clone()}, r.items...)
	return nil
}

func (r *Memory) Update(ctx context.Context, item *model.InventoryItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item.Clone()
			return nil
		}
	}
	return nil
}

func (r *Memory) Delete(ctx context.Context, id model.ItemID) error {
	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
