package dialog

import (
	"strconv"

	"github.com/idilsaglam/shoplist/internal/model"
)

// ItemEditor keeps draft fields for one row being edited in place.
// Fields take any text; validation happens on Save.
type ItemEditor struct {
	item       model.ShoppingItem
	name       string
	quantity   string
	onComplete func(name string, quantity int) error
}

func NewItemEditor(item model.ShoppingItem, onComplete func(name string, quantity int) error) *ItemEditor {
	return &ItemEditor{
		item:       item,
		name:       item.Name,
		quantity:   strconv.Itoa(item.Quantity),
		onComplete: onComplete,
	}
}

func (e *ItemEditor) ItemID() int          { return e.item.ID }
func (e *ItemEditor) Name() string         { return e.name }
func (e *ItemEditor) Quantity() string     { return e.quantity }
func (e *ItemEditor) SetName(v string)     { e.name = v }
func (e *ItemEditor) SetQuantity(v string) { e.quantity = v }

// Save hands the drafts to the completion callback. Quantity text that does
// not parse falls back to model.DefaultQuantity.
func (e *ItemEditor) Save() error {
	qty, err := model.ParseQuantity(e.quantity)
	if err != nil {
		qty = model.DefaultQuantity
	}
	if e.onComplete == nil {
		return nil
	}
	return e.onComplete(e.name, qty)
}
