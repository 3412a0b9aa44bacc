package catalog

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/utils/logging"
)

var ErrAnalysisInFlight = goerr.New("an analysis is already in flight")

// AnalysisFailedMessage is the single user-facing message for any failure
// inside the image analysis workflow.
const AnalysisFailedMessage = "Failed to analyze the image. Please try another one."

// Controller orchestrates user workflows against the catalog. It owns the
// transient interaction state: the busy flag, the last error message, the
// pending-delete target and the editing target. One Controller serves one
// interaction surface; it is not safe for concurrent use.
type Controller struct {
	uc *UseCase

	busy          bool
	errMessage    string
	pendingDelete model.ItemID
	editing       *model.InventoryItem
	formOpen      bool
}

// NewController creates a Controller over the given use case
func NewController(uc *UseCase) *Controller {
	return &Controller{uc: uc}
}

// Busy reports whether an analysis workflow is in flight
func (c *Controller) Busy() bool { return c.busy }

// ErrMessage returns the user-facing message of the last failed workflow,
// empty when the last workflow succeeded
func (c *Controller) ErrMessage() string { return c.errMessage }

// ClearError dismisses the current error message
func (c *Controller) ClearError() { c.errMessage = "" }

// SubmitImages runs the capture → analyze → insert workflow. The first
// image is analyzed; all submitted image references are stored on the new
// item. The busy flag is cleared on every exit path. On failure nothing is
// inserted and ErrMessage is set.
func (c *Controller) SubmitImages(ctx context.Context, images []ImagePayload) (item *model.InventoryItem, err error) {
	if c.busy {
		return nil, ErrAnalysisInFlight
	}
	if len(images) == 0 {
		return nil, ErrEmptyImage
	}
	if len(images) > model.MaxImageRefs {
		return nil, goerr.Wrap(model.ErrTooManyImages, "too many images submitted",
			goerr.V("count", len(images)))
	}

	c.busy = true
	c.errMessage = ""
	defer func() {
		c.busy = false
		if err != nil {
			c.errMessage = AnalysisFailedMessage
			logging.From(ctx).Error("image analysis workflow failed", "error", err)
		}
	}()

	analyzed, err := c.uc.Analyze(ctx, images[0])
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(images))
	for _, img := range images {
		refs = append(refs, img.Ref)
	}

	item, err = c.uc.Insert(ctx, &model.InventoryItem{
		ID:             model.NewItemID(),
		ImageRefs:      refs,
		Name:           analyzed.ItemName,
		Description:    analyzed.Description,
		EstimatedPrice: analyzed.EstimatedPrice,
		Category:       analyzed.Category,
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// RequestDelete marks an item as the pending delete candidate. The store
// is not touched until ConfirmDelete.
func (c *Controller) RequestDelete(id model.ItemID) {
	c.pendingDelete = id
}

// PendingDelete returns the current delete candidate, empty when none
func (c *Controller) PendingDelete() model.ItemID { return c.pendingDelete }

// ConfirmDelete removes the pending item from the catalog and clears the
// candidate. No-op when nothing is pending.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == "" {
		return nil
	}

	id := c.pendingDelete
	c.pendingDelete = ""
	return c.uc.Delete(ctx, id)
}

// CancelDelete clears the pending candidate without mutating the store
func (c *Controller) CancelDelete() {
	c.pendingDelete = ""
}

// ItemForm holds the editable fields of an item
type ItemForm struct {
	Name           string
	Description    string
	EstimatedPrice string
	Category       string
	ImageRefs      []string
}

// BeginEdit opens the form pre-filled from an existing item
func (c *Controller) BeginEdit(item *model.InventoryItem) ItemForm {
	c.editing = item.Clone()
	c.formOpen = true
	return ItemForm{
		Name:           item.Name,
		Description:    item.Description,
		EstimatedPrice: item.EstimatedPrice,
		Category:       item.Category,
		ImageRefs:      append([]string(nil), item.ImageRefs...),
	}
}

// BeginAdd opens an all-empty form for manual entry
func (c *Controller) BeginAdd() ItemForm {
	c.editing = nil
	c.formOpen = true
	return ItemForm{}
}

// FormOpen reports whether an edit/add form is open
func (c *Controller) FormOpen() bool { return c.formOpen }

// SaveForm dispatches the form to update (when editing an existing item)
// or insert (manual add), then closes the form. The saved item is returned.
func (c *Controller) SaveForm(ctx context.Context, form ItemForm) (*model.InventoryItem, error) {
	if !c.formOpen {
		return nil, goerr.New("no form is open")
	}

	item := &model.InventoryItem{
		Name:           form.Name,
		Description:    form.Description,
		EstimatedPrice: form.EstimatedPrice,
		Category:       form.Category,
		ImageRefs:      form.ImageRefs,
	}

	if c.editing != nil {
		item.ID = c.editing.ID
		if err := c.uc.Update(ctx, item); err != nil {
			return nil, err
		}
	} else {
		inserted, err := c.uc.Insert(ctx, item)
		if err != nil {
			return nil, err
		}
		item = inserted
	}

	c.formOpen = false
	c.editing = nil
	return item, nil
}

// CloseForm discards the form without saving
func (c *Controller) CloseForm() {
	c.formOpen = false
	c.editing = nil
}
