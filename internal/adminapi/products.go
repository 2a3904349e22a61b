package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/toughpos/internal/pos"
	"github.com/talkincode/toughpos/internal/webserver"
)

type productPayload struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	MinStock int      `json:"minStock"`
}

// validate enforces the required-field rules before anything reaches the
// ledger: name, category, price and stock must all be present and sane.
func (p *productPayload) validate() string {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	switch {
	case p.Name == "":
		return "name is required"
	case p.Category == "":
		return "category is required"
	case p.Price == nil:
		return "price is required"
	case *p.Price < 0:
		return "price must not be negative"
	case p.Stock == nil:
		return "stock is required"
	case *p.Stock < 0:
		return "stock must not be negative"
	case p.MinStock < 0:
		return "minStock must not be negative"
	}
	return ""
}

func (p *productPayload) data() pos.ProductData {
	return pos.ProductData{
		Name:     p.Name,
		Category: p.Category,
		Price:    *p.Price,
		Stock:    *p.Stock,
		MinStock: p.MinStock,
	}
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/lowstock", listLowStockProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	return ok(c, GetService(c).Catalog(q))
}

func listLowStockProducts(c echo.Context) error {
	return ok(c, GetService(c).LowStockProducts())
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := GetService(c).Product(id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
	}
	p, err := GetService(c).UpsertProduct(payload.data(), 0)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", msg, nil)
	}
	p, err := GetService(c).UpsertProduct(payload.data(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	GetService(c).RemoveProduct(id)
	return ok(c, map[string]interface{}{"id": id})
}
