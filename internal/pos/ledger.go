package pos

import (
	"strings"

	"github.com/talkincode/toughpos/internal/domain"
)

// ProductData carries the editable fields of a catalog entry. Required-field
// validation happens at the API payload layer before this is built.
type ProductData struct {
	Name     string
	Category string
	Price    float64
	Stock    int
	MinStock int
}

// UpsertProduct returns the catalog with the entry applied. When existingID
// is non-zero the matching entry is replaced in place, keeping its id and
// position; otherwise a new entry is appended under a fresh id.
func UpsertProduct(catalog []domain.Product, data ProductData, existingID int64, idgen IDGenerator) []domain.Product {
	if existingID != 0 {
		next := make([]domain.Product, len(catalog))
		for i, p := range catalog {
			if p.ID == existingID {
				next[i] = domain.Product{
					ID:       existingID,
					Name:     data.Name,
					Category: data.Category,
					Price:    data.Price,
					Stock:    data.Stock,
					MinStock: data.MinStock,
				}
			} else {
				next[i] = p
			}
		}
		return next
	}

	next := make([]domain.Product, 0, len(catalog)+1)
	next = append(next, catalog...)
	next = append(next, domain.Product{
		ID:       idgen.NextID(),
		Name:     data.Name,
		Category: data.Category,
		Price:    data.Price,
		Stock:    data.Stock,
		MinStock: data.MinStock,
	})
	return next
}

// RemoveProduct deletes the entry with the given id. Removing an absent id
// is a no-op.
func RemoveProduct(catalog []domain.Product, id int64) []domain.Product {
	next := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return next
}

// FindProduct looks up a catalog entry by id.
func FindProduct(catalog []domain.Product, id int64) (domain.Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// LowStock returns the entries at or below their alert threshold,
// preserving catalog order.
func LowStock(catalog []domain.Product) []domain.Product {
	low := make([]domain.Product, 0)
	for _, p := range catalog {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// FilterCatalog returns the entries whose name or category contains the
// query, case-insensitive. An empty query matches everything.
func FilterCatalog(catalog []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return catalog
	}
	matched := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matched = append(matched, p)
		}
	}
	return matched
}
