package adminapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/toughpos/internal/pos"
	"github.com/talkincode/toughpos/internal/webserver"
)

type invoicePayload struct {
	Client string `json:"client"`
}

func registerInvoiceRoutes() {
	webserver.ApiGET("/invoices", listInvoices)
	webserver.ApiPOST("/invoices", createInvoice)
}

// listInvoices serves the history tab: newest first, paginated.
func listInvoices(c echo.Context) error {
	page, pageSize := parsePagination(c)
	log := GetService(c).Invoices()

	total := len(log)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return paged(c, log[start:end], total, page, pageSize)
}

func createInvoice(c echo.Context) error {
	var payload invoicePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	invoice, err := GetService(c).GenerateInvoice(payload.Client)
	switch {
	case errors.Is(err, pos.ErrEmptyCart):
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "The cart is empty", nil)
	case errors.Is(err, pos.ErrInsufficientStock):
		return fail(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock available", nil)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate invoice", err.Error())
	}
	return ok(c, invoice)
}
