package model

import (
	"crypto/rand"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyName     = goerr.New("item name is empty")
	ErrNoImageRefs   = goerr.New("item has no image references")
	ErrTooManyImages = goerr.New("item has too many image references")
)

// MaxImageRefs is the maximum number of image references per item.
const MaxImageRefs = 4

// PlaceholderImageRef is substituted when an item is saved without any image.
// A persisted item always carries at least one reference.
const PlaceholderImageRef = "placeholder://no-image"

type ItemID string

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewItemID generates a new unique ItemID. The ID is a ULID, so it is
// collision-resistant across rapid creations while still encoding the
// creation timestamp.
func NewItemID() ItemID {
	return ItemID(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

// Time decodes the creation time embedded in the ID. Returns the zero
// time if the ID is not a valid ULID.
func (id ItemID) Time() time.Time {
	u, err := ulid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// InventoryItem is the sole persisted entity of the catalog.
type InventoryItem struct {
	ID             ItemID   `json:"id"`
	ImageRefs      []string `json:"imageRefs"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	EstimatedPrice string   `json:"estimatedPrice"`
	Category       string   `json:"category"`
}

// Validate checks if the item can be persisted
func (x *InventoryItem) Validate() error {
	if x.Name == "" {
		return ErrEmptyName
	}
	if len(x.ImageRefs) == 0 {
		return ErrNoImageRefs
	}
	if len(x.ImageRefs) > MaxImageRefs {
		return goerr.Wrap(ErrTooManyImages, "too many image references",
			goerr.V("count", len(x.ImageRefs)),
			goerr.V("max", MaxImageRefs))
	}
	return nil
}

// Clone returns a deep copy of the item
func (x *InventoryItem) Clone() *InventoryItem {
	c := *x
	c.ImageRefs = append([]string(nil), x.ImageRefs...)
	return &c
}

// AnalyzedItem is the structured result of one image analysis call. It is
// transient: consumed exactly once to construct a new InventoryItem.
type AnalyzedItem struct {
	ItemName       string `json:"itemName"`
	Description    string `json:"description"`
	EstimatedPrice string `json:"estimatedPrice"`
	Category       string `json:"category"`
}

// Validate checks that every field the analysis service is required to
// return is populated
func (x *AnalyzedItem) Validate() error {
	if x.ItemName == "" {
		return goerr.New("analyzed item name is empty")
	}
	if x.Description == "" {
		return goerr.New("analyzed item description is empty")
	}
	if x.EstimatedPrice == "" {
		return goerr.New("analyzed item price is empty")
	}
	if x.Category == "" {
		return goerr.New("analyzed item category is empty")
	}
	return nil
}
