package adminapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/toughpos/internal/pos"
	"github.com/talkincode/toughpos/internal/webserver"
)

type cartAddPayload struct {
	ProductID int64 `json:"productId"`
}

type cartQuantityPayload struct {
	Quantity int `json:"quantity"`
}

type cartClientPayload struct {
	Client string `json:"client"`
}

type cartView struct {
	Items    interface{} `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Client   string      `json:"client"`
}

func registerCartRoutes() {
	webserver.ApiGET("/cart", getCart)
	webserver.ApiPOST("/cart/items", addCartItem)
	webserver.ApiPUT("/cart/items/:id", setCartItemQuantity)
	webserver.ApiPUT("/cart/client", setCartClient)
	webserver.ApiDELETE("/cart", clearCart)
}

func getCart(c echo.Context) error {
	items, subtotal, client := GetService(c).CartState()
	return ok(c, cartView{Items: items, Subtotal: subtotal, Client: client})
}

func addCartItem(c echo.Context) error {
	var payload cartAddPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	err := GetService(c).AddToCart(payload.ProductID)
	switch {
	case errors.Is(err, pos.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case errors.Is(err, pos.ErrOutOfStock):
		return fail(c, http.StatusBadRequest, "OUT_OF_STOCK", "Product is out of stock", nil)
	case errors.Is(err, pos.ErrInsufficientStock):
		return fail(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock available", nil)
	case err != nil:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add to cart", err.Error())
	}
	return getCart(c)
}

func setCartItemQuantity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var payload cartQuantityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if err := GetService(c).SetCartQuantity(id, payload.Quantity); err != nil {
		if errors.Is(err, pos.ErrInsufficientStock) {
			return fail(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock available", nil)
		}
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update cart", err.Error())
	}
	return getCart(c)
}

func setCartClient(c echo.Context) error {
	var payload cartClientPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	GetService(c).SetClientName(payload.Client)
	return getCart(c)
}

func clearCart(c echo.Context) error {
	GetService(c).ClearCart()
	return getCart(c)
}
