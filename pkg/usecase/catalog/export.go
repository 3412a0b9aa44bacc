package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/y-ohta/magpie/pkg/model"
)

var csvHeader = []string{"Name", "Category", "Estimated Price", "Description", "Number of Images", "Date Added"}

// quoteField wraps a text field in double quotes with embedded quotes
// doubled. Name, category and description are always quoted regardless of
// content; this is part of the fixed export contract.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// cleanPrice strips the price down to numeric characters for spreadsheet
// compatibility
func cleanPrice(price string) string {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dateAdded derives the creation date from the item ID timestamp
func dateAdded(id model.ItemID) string {
	ts := id.Time()
	if ts.IsZero() {
		return ""
	}
	return ts.Format("2006-01-02")
}

// WriteCSV writes the item sequence as comma-separated text with the fixed
// header `Name, Category, Estimated Price, Description, Number of Images,
// Date Added`
func (u *UseCase) WriteCSV(w io.Writer, items []*model.InventoryItem) error {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, item := range items {
		row := []string{
			quoteField(item.Name),
			quoteField(item.Category),
			cleanPrice(item.EstimatedPrice),
			quoteField(item.Description),
			fmt.Sprintf("%d", len(item.ImageRefs)),
			dateAdded(item.ID),
		}
		lines = append(lines, strings.Join(row, ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return goerr.Wrap(err, "failed to write CSV")
	}
	return nil
}

// ExportCSV writes the full catalog to `<stem>_<date>.csv` and returns the
// file path
func (u *UseCase) ExportCSV(ctx context.Context, stem string) (string, error) {
	if stem == "" {
		stem = "inventory"
	}

	path := fmt.Sprintf("%s_%s.csv", stem, time.Now().Format("2006-01-02"))
	f, err := os.Create(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create export file", goerr.V("path", path))
	}
	defer f.Close()

	if err := u.WriteCSV(f, u.repo.Items(ctx)); err != nil {
		return "", err
	}

	return path, nil
}
