package pos

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/talkincode/toughpos/internal/domain"
)

// DefaultTopLimit is the ranking size shown in the daily report.
const DefaultTopLimit = 5

// SalesForDate returns the invoices whose day bucket matches dateOnly
// (YYYY-MM-DD), preserving log order.
func SalesForDate(log []domain.Invoice, dateOnly string) []domain.Invoice {
	matched := make([]domain.Invoice, 0)
	for _, inv := range log {
		if inv.DateOnly == dateOnly {
			matched = append(matched, inv)
		}
	}
	return matched
}

// Summarize aggregates one day of invoices into headline figures. Ticket
// statistics are zero for an empty day.
func Summarize(invoices []domain.Invoice) domain.DailySummary {
	var summary domain.DailySummary
	totals := make([]float64, 0, len(invoices))
	for _, inv := range invoices {
		summary.TotalSales += inv.Total
		summary.UnitsSold += inv.UnitsSold()
		totals = append(totals, inv.Total)
	}
	summary.InvoiceCount = len(invoices)
	if len(totals) > 0 {
		summary.AverageTicket, _ = stats.Mean(totals)
		summary.MedianTicket, _ = stats.Median(totals)
	}
	return summary
}

// TopProducts ranks the day's items by units sold, grouped by product name
// so renamed or re-created products with the same label merge into one row.
// The sort is stable: ties keep first-encounter order. Result length is at
// most limit.
func TopProducts(invoices []domain.Invoice, limit int) []domain.ProductSales {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	index := make(map[string]int)
	ranking := make([]domain.ProductSales, 0)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			i, ok := index[item.Name]
			if !ok {
				i = len(ranking)
				index[item.Name] = i
				ranking = append(ranking, domain.ProductSales{Name: item.Name})
			}
			ranking[i].Quantity += item.Quantity
			ranking[i].Total += item.LineTotal()
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// AvailableDates returns the distinct day buckets present in the invoice
// log, most recent first.
func AvailableDates(log []domain.Invoice) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, inv := range log {
		if _, ok := seen[inv.DateOnly]; ok {
			continue
		}
		seen[inv.DateOnly] = struct{}{}
		dates = append(dates, inv.DateOnly)
	}
	// YYYY-MM-DD keys sort correctly as strings
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
