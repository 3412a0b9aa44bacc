package catalog

import (
	"context"
	"strconv"

	"github.com/y-ohta/magpie/pkg/model"
)

// InventoryStats summarizes the catalog
type InventoryStats struct {
	TotalItems     int
	TotalValue     float64
	AverageValue   float64
	CategoryCounts map[string]int
}

// parsePrice extracts a numeric amount from the free-form price string.
// The stored format is not trusted: unparsable prices count as zero.
func parsePrice(price string) float64 {
	v, err := strconv.ParseFloat(cleanPrice(price), 64)
	if err != nil {
		return 0
	}
	return v
}

// Stats computes summary statistics over the full catalog
func (u *UseCase) Stats(ctx context.Context) *InventoryStats {
	items := u.repo.Items(ctx)
	return CalculateStats(items)
}

// CalculateStats computes summary statistics over an item sequence
func CalculateStats(items []*model.InventoryItem) *InventoryStats {
	stats := &InventoryStats{
		TotalItems:     len(items),
		CategoryCounts: map[string]int{},
	}

	for _, item := range items {
		stats.TotalValue += parsePrice(item.EstimatedPrice)
		stats.CategoryCounts[item.Category]++
	}

	if stats.TotalItems > 0 {
		stats.AverageValue = stats.TotalValue / float64(stats.TotalItems)
	}

	return stats
}
