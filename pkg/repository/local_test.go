package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/repository"
)

func newItem(name, category, price string) *model.InventoryItem {
	return &model.InventoryItem{
		ID:             model.NewItemID(),
		ImageRefs:      []string{model.PlaceholderImageRef},
		Name:           name,
		Description:    "test item",
		EstimatedPrice: price,
		Category:       category,
	}
}

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	chair := newItem("Chair", "Furniture", "$50.00")
	lamp := newItem("Lamp", "Lighting", "$20.00")
	gt.NoError(t, repo.Insert(ctx, chair))
	gt.NoError(t, repo.Insert(ctx, lamp))

	// Reload from the snapshot file and compare sequences
	reloaded, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	items := reloaded.Items(ctx)
	gt.Equal(t, len(items), 2)
	gt.Equal(t, items[0].ID, lamp.ID)
	gt.Equal(t, items[1].ID, chair.ID)
	gt.Equal(t, items[0].Name, "Lamp")
	gt.Equal(t, items[1].EstimatedPrice, "$50.00")
}

func TestLocalInsertPrepends(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	first := newItem("First", "A", "$1.00")
	second := newItem("Second", "B", "$2.00")
	gt.NoError(t, repo.Insert(ctx, first))
	gt.NoError(t, repo.Insert(ctx, second))

	items := repo.Items(ctx)
	gt.Equal(t, items[0].ID, second.ID)
	gt.Equal(t, items[1].ID, first.ID)
}

func TestLocalUpdate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	chair := newItem("Chair", "Furniture", "$50.00")
	lamp := newItem("Lamp", "Lighting", "$20.00")
	gt.NoError(t, repo.Insert(ctx, chair))
	gt.NoError(t, repo.Insert(ctx, lamp))

	edited := chair.Clone()
	edited.Name = "Office Chair"
	edited.EstimatedPrice = "$65.00"
	gt.NoError(t, repo.Update(ctx, edited))

	items := repo.Items(ctx)
	gt.Equal(t, len(items), 2)
	gt.Equal(t, items[1].ID, chair.ID)
	gt.Equal(t, items[1].Name, "Office Chair")
	// Other items untouched
	gt.Equal(t, items[0].Name, "Lamp")
}

func TestLocalUpdateAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	chair := newItem("Chair", "Furniture", "$50.00")
	gt.NoError(t, repo.Insert(ctx, chair))

	ghost := newItem("Ghost", "Nothing", "$0.00")
	gt.NoError(t, repo.Update(ctx, ghost))

	items := repo.Items(ctx)
	gt.Equal(t, len(items), 1)
	gt.Equal(t, items[0].Name, "Chair")
}

func TestLocalDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	chair := newItem("Chair", "Furniture", "$50.00")
	gt.NoError(t, repo.Insert(ctx, chair))
	gt.NoError(t, repo.Delete(ctx, chair.ID))
	gt.Equal(t, len(repo.Items(ctx)), 0)

	// Deleting an absent ID is a no-op
	gt.NoError(t, repo.Delete(ctx, model.ItemID("missing")))
}

func TestLocalCorruptSnapshotDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")
	gt.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)
	gt.Equal(t, len(repo.Items(ctx)), 0)
}

func TestLocalWriteFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	// Occupy the temp file slot with a directory so the snapshot write fails
	gt.NoError(t, os.Mkdir(path+".tmp", 0o755))

	// The write failure is logged, not returned; the in-memory catalog
	// stays authoritative for the session
	chair := newItem("Chair", "Furniture", "$50.00")
	gt.NoError(t, repo.Insert(ctx, chair))

	items := repo.Items(ctx)
	gt.A(t, items).Length(1)
	gt.Equal(t, items[0].ID, chair.ID)

	// No snapshot file was produced
	_, statErr := os.Stat(path)
	gt.True(t, os.IsNotExist(statErr))
}

func TestLocalNullSnapshotEntriesDropped(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	snapshot := `[null,{"id":"01ARZ3NDEKTSV4RRFFQ69G5FAV","imageRefs":["a"],"name":"Chair","description":"","estimatedPrice":"$50.00","category":"Furniture"},null]`
	gt.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	items := repo.Items(ctx)
	gt.A(t, items).Length(1)
	gt.Equal(t, items[0].Name, "Chair")
}

func TestLocalAllNullSnapshotIsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")
	gt.NoError(t, os.WriteFile(path, []byte(`[null]`), 0o644))

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)
	gt.A(t, repo.Items(ctx)).Length(0)
}

func TestLocalMissingSnapshotIsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nope", "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)
	gt.Equal(t, len(repo.Items(ctx)), 0)

	// First insert creates the parent directory
	gt.NoError(t, repo.Insert(ctx, newItem("Chair", "Furniture", "$50.00")))
	_, statErr := os.Stat(path)
	gt.NoError(t, statErr)
}

func TestLocalSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.json")

	repo, err := repository.NewLocal(ctx, path)
	gt.NoError(t, err)

	chair := newItem("Chair", "Furniture", "$50.00")
	gt.NoError(t, repo.Insert(ctx, chair))

	// Mutating a returned snapshot must not affect the store
	items := repo.Items(ctx)
	items[0].Name = "Mutated"

	gt.Equal(t, repo.Items(ctx)[0].Name, "Chair")
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	chair := newItem("Chair", "Furniture", "$50.00")
	gt.NoError(t, repo.Insert(ctx, chair))

	got := repo.Get(ctx, chair.ID)
	gt.NotNil(t, got)
	gt.Equal(t, got.Name, "Chair")

	gt.Nil(t, repo.Get(ctx, model.ItemID("missing")))
}
