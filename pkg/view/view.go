// Package view provides pure computations over a catalog snapshot. Nothing
// here mutates state or is persisted; views are recomputed from the current
// snapshot and filter inputs on demand.
package view

import (
	"sort"
	"strings"

	"github.com/y-ohta/magpie/pkg/model"
)

// AllCategories is the selector value that matches every category.
const AllCategories = "All"

// Categories returns the distinct category values present in the snapshot,
// sorted lexicographically ascending. This is the filter vocabulary.
func Categories(items []*model.InventoryItem) []string {
	seen := map[string]bool{}
	categories := make([]string, 0)
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories
}

// Filter returns the subsequence of items matching both the category
// selector and the search term. The category matches when selectedCategory
// is AllCategories or equals the item's category exactly. The search term
// matches when it is a case-insensitive substring of the item's name; an
// empty term matches everything. Relative order is preserved.
func Filter(items []*model.InventoryItem, searchTerm, selectedCategory string) []*model.InventoryItem {
	term := strings.ToLower(searchTerm)

	filtered := make([]*model.InventoryItem, 0, len(items))
	for _, item := range items {
		if selectedCategory != AllCategories && item.Category != selectedCategory {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(item.Name), term) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
