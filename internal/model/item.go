package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength caps an item name, counted in characters (runes).
	MaxNameLength = 16
	// MaxQuantity is the largest quantity an item can carry (int32 max).
	MaxQuantity = math.MaxInt32
	// DefaultQuantity seeds new drafts and backs unparsable editor input.
	DefaultQuantity = 1
)

var (
	ErrEmptyQuantity    = errors.New("quantity is empty")
	ErrQuantityNotDigit = errors.New("quantity must contain only digits")
	ErrQuantityTooLarge = errors.New("quantity exceeds maximum")
	ErrQuantityZero     = errors.New("quantity must be at least 1")
)

// ShoppingItem is one row of the shopping list.
type ShoppingItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	IsEditing bool   `json:"is_editing,omitempty"`
}

// NameFits reports whether name is within MaxNameLength characters.
func NameFits(name string) bool {
	return utf8.RuneCountInString(name) <= MaxNameLength
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// ParseQuantity parses quantity text as a decimal integer in [1, MaxQuantity].
// Only ASCII digits are accepted; no sign, no spaces.
func ParseQuantity(text string) (int, error) {
	if text == "" {
		return 0, ErrEmptyQuantity
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, ErrQuantityNotDigit
		}
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		// all digits, so the only failure left is overflow
		return 0, ErrQuantityTooLarge
	}
	if n > MaxQuantity {
		return 0, ErrQuantityTooLarge
	}
	if n == 0 {
		return 0, ErrQuantityZero
	}
	return int(n), nil
}
