package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/toughpos/internal/domain"
	"github.com/talkincode/toughpos/internal/pos"
	"github.com/talkincode/toughpos/internal/webserver"
)

type dailyReportView struct {
	Summary     domain.DailySummary   `json:"summary"`
	TopProducts []domain.ProductSales `json:"topProducts"`
	Invoices    []domain.Invoice      `json:"invoices"`
}

func registerReportRoutes() {
	webserver.ApiGET("/reports/daily", getDailyReport)
	webserver.ApiGET("/reports/daily/export", exportDailyReport)
	webserver.ApiGET("/reports/dates", getAvailableDates)
}

// reportDate resolves the date query param leniently ("2024-01-01",
// "01/02/2024", "Jan 2 2024" all work) and defaults to today.
func reportDate(c echo.Context) (string, error) {
	raw := strings.TrimSpace(c.QueryParam("date"))
	if raw == "" {
		return time.Now().UTC().Format("2006-01-02"), nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func getDailyReport(c echo.Context) error {
	date, err := reportDate(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse date", err.Error())
	}
	summary, top, invoices := GetService(c).DailyReport(date)
	return ok(c, dailyReportView{Summary: summary, TopProducts: top, Invoices: invoices})
}

func getAvailableDates(c echo.Context) error {
	return ok(c, GetService(c).AvailableDates())
}

func exportDailyReport(c echo.Context) error {
	date, err := reportDate(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse date", err.Error())
	}
	summary, top, invoices := GetService(c).DailyReport(date)

	switch strings.ToLower(c.QueryParam("format")) {
	case "", "csv":
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="sales-%s.csv"`, date))
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)
		return pos.ExportInvoicesCSV(c.Response(), invoices)
	case "xlsx":
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="sales-%s.xlsx"`, date))
		c.Response().Header().Set(echo.HeaderContentType,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return pos.ExportDailyReportXLSX(c.Response(), summary, top, invoices)
	default:
		return fail(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx", nil)
	}
}
