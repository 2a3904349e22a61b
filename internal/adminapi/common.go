package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/toughpos/internal/pos"
	"github.com/talkincode/toughpos/internal/webserver"
)

type restResult struct {
	Code   string      `json:"code"`
	Msg    string      `json:"msg,omitempty"`
	Detail interface{} `json:"detail,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

type pagedResult struct {
	Rows     interface{} `json:"rows"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// GetService extracts the POS service installed by the webserver middleware.
func GetService(c echo.Context) *pos.Service {
	return c.Get(webserver.PosServiceContextKey).(*pos.Service)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, restResult{Code: "OK", Data: data})
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	return c.JSON(status, restResult{Code: code, Msg: msg, Detail: detail})
}

func paged(c echo.Context, rows interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, restResult{Code: "OK", Data: pagedResult{
		Rows:     rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}})
}

// parsePagination reads page/perPage query params with sane bounds.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// InitRouter registers every admin API route.
func InitRouter() {
	registerProductRoutes()
	registerCartRoutes()
	registerInvoiceRoutes()
	registerReportRoutes()
	registerSystemRoutes()
}
