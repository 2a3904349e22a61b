package pos

import "errors"

var (
	// ErrEmptyCart is returned when invoice generation is attempted with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound is returned when a product id is absent from the catalog.
	ErrNotFound = errors.New("product not found")

	// ErrOutOfStock is returned when a zero-stock product is added to the cart.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrInsufficientStock is returned in strict-stock mode when a requested
	// quantity exceeds the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
