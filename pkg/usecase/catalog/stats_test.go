package catalog_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func TestCalculateStats(t *testing.T) {
	items := []*model.InventoryItem{
		{ID: "1", Name: "Chair", Category: "Furniture", EstimatedPrice: "$50.00"},
		{ID: "2", Name: "Desk", Category: "Furniture", EstimatedPrice: "$150.00"},
		{ID: "3", Name: "Lamp", Category: "Lighting", EstimatedPrice: "$20.00"},
	}

	stats := catalog.CalculateStats(items)
	gt.Equal(t, stats.TotalItems, 3)
	gt.Number(t, stats.TotalValue).Equal(220.0)
	gt.Number(t, stats.AverageValue).Equal(220.0/3.0)
	gt.Equal(t, stats.CategoryCounts["Furniture"], 2)
	gt.Equal(t, stats.CategoryCounts["Lighting"], 1)
}

func TestCalculateStatsMalformedPrices(t *testing.T) {
	items := []*model.InventoryItem{
		{ID: "1", Name: "a", Category: "x", EstimatedPrice: "priceless"},
		{ID: "2", Name: "b", Category: "x", EstimatedPrice: ""},
		{ID: "3", Name: "c", Category: "x", EstimatedPrice: "$9.50"},
	}

	stats := catalog.CalculateStats(items)
	gt.Equal(t, stats.TotalItems, 3)
	gt.Number(t, stats.TotalValue).Equal(9.5)
}

func TestCalculateStatsEmpty(t *testing.T) {
	stats := catalog.CalculateStats(nil)
	gt.Equal(t, stats.TotalItems, 0)
	gt.Number(t, stats.TotalValue).Equal(0.0)
	gt.Number(t, stats.AverageValue).Equal(0.0)
	gt.Equal(t, len(stats.CategoryCounts), 0)
}
