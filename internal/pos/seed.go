package pos

import "github.com/talkincode/toughpos/internal/domain"

// DefaultCatalog returns the demo products installed on first run, when
// nothing has been persisted yet.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Hamburguesa Clásica", Category: "Comida", Price: 25000, Stock: 50, MinStock: 10},
		{ID: 2, Name: "Pizza Margarita", Category: "Comida", Price: 35000, Stock: 30, MinStock: 8},
		{ID: 3, Name: "Cerveza", Category: "Bebidas", Price: 8000, Stock: 100, MinStock: 20},
		{ID: 4, Name: "Gaseosa", Category: "Bebidas", Price: 5000, Stock: 80, MinStock: 15},
	}
}
