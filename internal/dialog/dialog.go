// Package dialog holds the form state behind the add-item dialog and the
// inline item editor. It knows nothing about rendering: the TUI feeds it the
// value a field would take after a keystroke and shows whatever Notice comes
// back.
package dialog

import (
	"errors"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Notice is a short-lived message for the user. The zero value means
// "nothing to show".
type Notice string

const (
	NoticeNameTooLong     Notice = "Max character limit reached!"
	NoticeQuantityMissing Notice = "Number must be added!"
	NoticeQuantityNaN     Notice = "Only numbers are allowed!"
	NoticeQuantityTooBig  Notice = "Max number limit reached!"
	NoticeItemAdded       Notice = "New item has been added!"
	NoticeCancelled       Notice = "Action has been cancelled!"
	NoticeItemUpdated     Notice = "Item has been updated!"
	NoticeItemDeleted     Notice = "Item has been deleted!"
	NoticeNameRequired    Notice = "Name cannot be empty!"
	NoticeItemNotFound    Notice = "Item could not be found!"
	NoticeActionFailed    Notice = "Something went wrong!"
)

// DefaultQuantityText is what the quantity field holds when the dialog opens.
const DefaultQuantityText = "1"

// Adder commits a validated draft. *memstore.Store satisfies it.
type Adder interface {
	Add(name, quantityText string) (model.ShoppingItem, error)
}

// AddDialog is the closed -> open -> closed form for new items.
type AddDialog struct {
	visible  bool
	name     string
	quantity string
}

func (d *AddDialog) Open() {
	d.visible = true
	d.reset()
}

func (d *AddDialog) Visible() bool    { return d.visible }
func (d *AddDialog) Name() string     { return d.name }
func (d *AddDialog) Quantity() string { return d.quantity }

// SetName accepts v when it is at most model.MaxNameLength characters long.
// On rejection the previous value stays and a notice is returned.
func (d *AddDialog) SetName(v string) (Notice, bool) {
	if !model.NameFits(v) {
		return NoticeNameTooLong, false
	}
	d.name = v
	return "", true
}

// SetQuantity accepts v when it parses as a quantity in range.
// An empty field is never accepted.
func (d *AddDialog) SetQuantity(v string) (Notice, bool) {
	if n := QuantityNotice(v); n != "" {
		return n, false
	}
	d.quantity = v
	return "", true
}

// Confirm commits the draft through a. A blank name is a silent no-op and
// leaves the dialog open.
func (d *AddDialog) Confirm(a Adder) (model.ShoppingItem, Notice, error) {
	if model.IsBlank(d.name) {
		return model.ShoppingItem{}, "", nil
	}
	it, err := a.Add(d.name, d.quantity)
	if err != nil {
		return model.ShoppingItem{}, "", err
	}
	d.visible = false
	d.reset()
	return it, NoticeItemAdded, nil
}

func (d *AddDialog) Cancel() Notice {
	d.visible = false
	d.reset()
	return NoticeCancelled
}

func (d *AddDialog) reset() {
	d.name = ""
	d.quantity = DefaultQuantityText
}

// QuantityNotice maps quantity text to the notice its rejection shows,
// or "" when the text is acceptable.
func QuantityNotice(v string) Notice {
	_, err := model.ParseQuantity(v)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrQuantityNotDigit):
		return NoticeQuantityNaN
	case errors.Is(err, model.ErrQuantityTooLarge):
		return NoticeQuantityTooBig
	default:
		// empty or zero
		return NoticeQuantityMissing
	}
}
