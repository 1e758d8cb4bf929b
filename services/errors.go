package services

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
)

// ValidationError marks request input that failed validation. Its text is
// safe to surface to the client as-is.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// InsufficientStockError reports how many units are actually available.
// Merged is set when the shortfall comes from combining the requested
// quantity with what is already in the cart.
type InsufficientStockError struct {
	Available int
	Merged    bool
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available in stock", e.Available)
}
