package pos

import (
	"strings"
	"time"

	"github.com/talkincode/toughpos/internal/domain"
)

// TaxRate is the fixed value-added tax applied to every invoice.
const TaxRate = 0.19

// DefaultClient labels invoices generated without a client name.
const DefaultClient = "General Client"

// GenerateInvoice turns the cart into an immutable invoice and returns the
// catalog with every sold quantity decremented. The input slices are not
// modified; nothing happens on error.
//
// A single instant feeds the invoice id and all three date fields, so they
// always describe the same moment even across a clock tick. In strict mode
// a line whose quantity exceeds the available stock aborts the whole
// invoice; otherwise stock is allowed to go negative, matching the
// historical oversell behavior.
func GenerateInvoice(cart []domain.CartLine, clientName string, catalog []domain.Product,
	now time.Time, strict bool) (domain.Invoice, []domain.Product, error) {

	if len(cart) == 0 {
		return domain.Invoice{}, nil, ErrEmptyCart
	}

	if strict {
		for _, line := range cart {
			if p, ok := FindProduct(catalog, line.ID); ok && line.Quantity > p.Stock {
				return domain.Invoice{}, nil, ErrInsufficientStock
			}
		}
	}

	subtotal := Subtotal(cart)
	tax := subtotal * TaxRate
	total := subtotal + tax

	client := strings.TrimSpace(clientName)
	if client == "" {
		client = DefaultClient
	}

	items := make([]domain.CartLine, len(cart))
	copy(items, cart)

	utc := now.UTC()
	invoice := domain.Invoice{
		ID:       now.UnixMilli(),
		Date:     FormatDisplayTime(now),
		DateISO:  utc.Format(time.RFC3339),
		DateOnly: utc.Format("2006-01-02"),
		Client:   client,
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}

	updated := make([]domain.Product, len(catalog))
	copy(updated, catalog)
	for _, line := range cart {
		for i := range updated {
			if updated[i].ID == line.ID {
				updated[i].Stock -= line.Quantity
			}
		}
	}

	return invoice, updated, nil
}
