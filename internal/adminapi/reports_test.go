package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newReportContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReportDate(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		c, _ := newReportContext(t, "/api/reports/daily")
		got, err := reportDate(c)
		if err != nil {
			t.Fatalf("reportDate() error = %v", err)
		}
		if want := time.Now().UTC().Format("2006-01-02"); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("accepts the bucket key format", func(t *testing.T) {
		c, _ := newReportContext(t, "/api/reports/daily?date=2024-01-15")
		got, err := reportDate(c)
		if err != nil {
			t.Fatalf("reportDate() error = %v", err)
		}
		if got != "2024-01-15" {
			t.Errorf("expected 2024-01-15, got %q", got)
		}
	})

	t.Run("accepts lenient formats", func(t *testing.T) {
		for query, want := range map[string]string{
			"01/02/2024":           "2024-01-02",
			"Jan 2, 2024":          "2024-01-02",
			"2024-01-02T15:04:05Z": "2024-01-02",
		} {
			c, _ := newReportContext(t, "/api/reports/daily?date="+strings.ReplaceAll(query, " ", "%20"))
			got, err := reportDate(c)
			if err != nil {
				t.Fatalf("reportDate(%q) error = %v", query, err)
			}
			if got != want {
				t.Errorf("reportDate(%q): expected %q, got %q", query, want, got)
			}
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		c, _ := newReportContext(t, "/api/reports/daily?date=not-a-date")
		if _, err := reportDate(c); err == nil {
			t.Error("expected an error for an unparseable date")
		}
	})
}

func TestGetDailyReport_InvalidDate(t *testing.T) {
	c, rec := newReportContext(t, "/api/reports/daily?date=not-a-date")
	if err := getDailyReport(c); err != nil {
		t.Fatalf("getDailyReport() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_DATE") {
		t.Errorf("expected INVALID_DATE code in body, got %q", rec.Body.String())
	}
}
