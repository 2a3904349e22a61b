package store

import (
	"github.com/pkg/errors"
	"github.com/talkincode/toughpos/config"
	"github.com/talkincode/toughpos/internal/domain"
)

// Persisted key names, kept identical to the historical localStorage layout
// so old data files remain readable.
const (
	KeyProducts = "restaurant_products"
	KeyInvoices = "restaurant_invoices"
)

// Repository is the typed persistence surface used by the POS service.
// Load methods return (nil, nil) when nothing has been persisted yet;
// the caller decides how to seed.
type Repository interface {
	LoadCatalog() ([]domain.Product, error)
	SaveCatalog(catalog []domain.Product) error
	LoadInvoices() ([]domain.Invoice, error)
	SaveInvoices(invoices []domain.Invoice) error
	Close() error
}

// Open creates the repository selected by database.type.
func Open(cfg config.DBConfig) (Repository, error) {
	switch cfg.Type {
	case "", "bolt":
		return OpenBolt(cfg.Path)
	case "sqlite", "postgres":
		return OpenGorm(cfg)
	default:
		return nil, errors.Errorf("unsupported database type %q", cfg.Type)
	}
}
