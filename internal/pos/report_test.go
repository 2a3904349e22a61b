package pos

import (
	"reflect"
	"testing"

	"github.com/talkincode/toughpos/internal/domain"
)

func invoiceOn(date string, total float64, items ...domain.CartLine) domain.Invoice {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return domain.Invoice{
		DateOnly: date,
		Items:    items,
		Subtotal: subtotal,
		Total:    total,
	}
}

func line(name string, price float64, quantity int) domain.CartLine {
	return domain.CartLine{Product: domain.Product{Name: name, Price: price}, Quantity: quantity}
}

func TestSalesForDate(t *testing.T) {
	log := []domain.Invoice{
		invoiceOn("2024-01-02", 100),
		invoiceOn("2024-01-01", 50),
		invoiceOn("2024-01-01", 30),
	}
	day := SalesForDate(log, "2024-01-01")
	if len(day) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(day))
	}
	for _, inv := range day {
		if inv.DateOnly != "2024-01-01" {
			t.Errorf("wrong bucket: %q", inv.DateOnly)
		}
	}
	if got := SalesForDate(log, "2024-03-01"); len(got) != 0 {
		t.Errorf("expected no invoices, got %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	day := []domain.Invoice{
		invoiceOn("2024-01-01", 50000, line("Burger", 25000, 2)),
		invoiceOn("2024-01-01", 30000, line("Beer", 8000, 3)),
	}
	summary := Summarize(day)

	if !almostEqual(summary.TotalSales, 80000) {
		t.Errorf("expected totalSales 80000, got %v", summary.TotalSales)
	}
	if summary.InvoiceCount != 2 {
		t.Errorf("expected invoiceCount 2, got %d", summary.InvoiceCount)
	}
	if summary.UnitsSold != 5 {
		t.Errorf("expected unitsSold 5, got %d", summary.UnitsSold)
	}
	if !almostEqual(summary.AverageTicket, 40000) {
		t.Errorf("expected averageTicket 40000, got %v", summary.AverageTicket)
	}
	if !almostEqual(summary.MedianTicket, 40000) {
		t.Errorf("expected medianTicket 40000, got %v", summary.MedianTicket)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalSales != 0 || summary.InvoiceCount != 0 || summary.UnitsSold != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.AverageTicket != 0 || summary.MedianTicket != 0 {
		t.Errorf("expected zero ticket stats, got %+v", summary)
	}
}

func TestTopProducts(t *testing.T) {
	day := []domain.Invoice{
		invoiceOn("2024-01-01", 0,
			line("Burger", 25000, 2),
			line("Beer", 8000, 5),
		),
		invoiceOn("2024-01-01", 0,
			line("Burger", 25000, 1),
			line("Soda", 5000, 5),
			line("Pizza", 35000, 1),
		),
	}

	t.Run("groups by name and sorts by quantity", func(t *testing.T) {
		top := TopProducts(day, 5)
		if len(top) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(top))
		}
		// Beer and Soda tie at 5; Beer was seen first so it stays first
		want := []string{"Beer", "Soda", "Burger", "Pizza"}
		var got []string
		for _, row := range top {
			got = append(got, row.Name)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected order %v, got %v", want, got)
		}
		if top[2].Quantity != 3 {
			t.Errorf("expected Burger quantity 3, got %d", top[2].Quantity)
		}
		if !almostEqual(top[2].Total, 75000) {
			t.Errorf("expected Burger total 75000, got %v", top[2].Total)
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		top := TopProducts(day, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(top))
		}
		for i := 1; i < len(top); i++ {
			if top[i].Quantity > top[i-1].Quantity {
				t.Error("rows not sorted descending by quantity")
			}
		}
	})

	t.Run("empty day", func(t *testing.T) {
		if top := TopProducts(nil, 5); len(top) != 0 {
			t.Errorf("expected no rows, got %d", len(top))
		}
	})
}

func TestAvailableDates(t *testing.T) {
	log := []domain.Invoice{
		invoiceOn("2024-01-02", 1),
		invoiceOn("2024-01-05", 1),
		invoiceOn("2024-01-02", 1),
		invoiceOn("2023-12-31", 1),
	}
	got := AvailableDates(log)
	want := []string{"2024-01-05", "2024-01-02", "2023-12-31"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
