package pos

import "github.com/talkincode/toughpos/internal/domain"

// AddLine returns the cart with the product added. An existing line for the
// same product id is incremented by exactly 1; otherwise a new quantity-1
// line is appended. Stock checks live at the service boundary, not here.
func AddLine(cart []domain.CartLine, product domain.Product) []domain.CartLine {
	next := make([]domain.CartLine, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID == product.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, domain.CartLine{Product: product, Quantity: 1})
}

// SetQuantity returns the cart with the line's quantity replaced. A quantity
// of zero or less removes the line entirely; no upper bound is enforced.
func SetQuantity(cart []domain.CartLine, id int64, quantity int) []domain.CartLine {
	next := make([]domain.CartLine, 0, len(cart))
	for _, line := range cart {
		if line.ID == id {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	return next
}

// Subtotal sums price * quantity over the cart lines.
func Subtotal(cart []domain.CartLine) float64 {
	var sum float64
	for _, line := range cart {
		sum += line.LineTotal()
	}
	return sum
}
