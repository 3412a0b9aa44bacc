package catalog_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/repository"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func TestWriteCSV(t *testing.T) {
	uc := catalog.New(repository.NewMemory(), nil)

	id := model.NewItemID()
	items := []*model.InventoryItem{
		{
			ID:             id,
			ImageRefs:      []string{"a", "b"},
			Name:           "Oak Desk",
			Description:    `Solid oak, "vintage" style`,
			EstimatedPrice: "$199.99",
			Category:       "Furniture",
		},
	}

	buf := &bytes.Buffer{}
	gt.NoError(t, uc.WriteCSV(buf, items))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	gt.A(t, lines).Length(2)
	gt.Equal(t, lines[0], "Name,Category,Estimated Price,Description,Number of Images,Date Added")

	wantDate := id.Time().Format("2006-01-02")
	gt.Equal(t, lines[1], `"Oak Desk","Furniture",199.99,"Solid oak, ""vintage"" style",2,`+wantDate)
}

func TestWriteCSVEmptyCatalog(t *testing.T) {
	uc := catalog.New(repository.NewMemory(), nil)

	buf := &bytes.Buffer{}
	gt.NoError(t, uc.WriteCSV(buf, nil))
	gt.Equal(t, buf.String(), "Name,Category,Estimated Price,Description,Number of Images,Date Added\n")
}

func TestWriteCSVUnparsableID(t *testing.T) {
	uc := catalog.New(repository.NewMemory(), nil)

	items := []*model.InventoryItem{
		{
			ID:             model.ItemID("legacy-id"),
			ImageRefs:      []string{model.PlaceholderImageRef},
			Name:           "Mystery Box",
			EstimatedPrice: "about $10",
			Category:       "Misc",
		},
	}

	buf := &bytes.Buffer{}
	gt.NoError(t, uc.WriteCSV(buf, items))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Price stripped to numeric characters, date blank for undecodable ID
	gt.Equal(t, lines[1], `"Mystery Box","Misc",10,"",1,`)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := catalog.New(repo, nil)

	gt.NoError(t, repo.Insert(ctx, &model.InventoryItem{
		ID:             model.NewItemID(),
		ImageRefs:      []string{model.PlaceholderImageRef},
		Name:           "Chair",
		EstimatedPrice: "$50.00",
		Category:       "Furniture",
	}))

	t.Chdir(t.TempDir())

	path, err := uc.ExportCSV(ctx, "inventory")
	gt.NoError(t, err)
	gt.S(t, path).Contains("inventory_")
	gt.S(t, path).Contains(time.Now().Format("2006-01-02"))
	gt.S(t, path).Contains(".csv")
}
