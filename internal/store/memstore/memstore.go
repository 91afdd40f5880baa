package memstore

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/shoplist/internal/model"
)

// In-memory item storage. Lives as long as the UI session; nothing is written
// to disk. Not safe for concurrent use: the Bubble Tea loop is the only caller.

var (
	ErrBlankName       = errors.New("item name is blank")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNotFound        = errors.New("item not found")
)

// Store holds the ordered shopping list.
type Store struct {
	items  []model.ShoppingItem
	nextID int
}

func New() *Store {
	return &Store{nextID: 1}
}

// Add appends a new item built from the dialog's raw field values.
// IDs come from a counter and are never reused, even after Delete.
func (s *Store) Add(name, quantityText string) (model.ShoppingItem, error) {
	if model.IsBlank(name) {
		return model.ShoppingItem{}, ErrBlankName
	}
	qty, err := model.ParseQuantity(quantityText)
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}
	it := model.ShoppingItem{ID: s.nextID, Name: name, Quantity: qty}
	s.nextID++
	s.items = append(s.items, it)
	return it, nil
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.ShoppingItem {
	out := make([]model.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Get(id int) (model.ShoppingItem, bool) {
	i := s.index(id)
	if i < 0 {
		return model.ShoppingItem{}, false
	}
	return s.items[i], true
}

// Edit replaces name and quantity of the item and leaves edit mode.
func (s *Store) Edit(id int, name string, quantity int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("edit %d: %w", id, ErrNotFound)
	}
	if model.IsBlank(name) {
		return ErrBlankName
	}
	if quantity < 1 || quantity > model.MaxQuantity {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	s.items[i].Name = name
	s.items[i].Quantity = quantity
	s.items[i].IsEditing = false
	return nil
}

// Delete removes the item, keeping the order of the rest.
func (s *Store) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Store) SetEditing(id int, editing bool) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("set editing %d: %w", id, ErrNotFound)
	}
	s.items[i].IsEditing = editing
	return nil
}

func (s *Store) index(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
