package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/talkincode/toughpos/internal/domain"
)

func setupBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("OpenBolt() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Hamburguesa Clásica", Category: "Comida", Price: 25000, Stock: 50, MinStock: 10},
		{ID: 2, Name: "Cerveza", Category: "Bebidas", Price: 8000, Stock: 100, MinStock: 20},
	}
}

func sampleInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID:       1705312800000,
			Date:     "15/1/2024, 13:00:00",
			DateISO:  "2024-01-15T18:00:00Z",
			DateOnly: "2024-01-15",
			Client:   "General Client",
			Items: []domain.CartLine{
				{Product: domain.Product{ID: 1, Name: "Hamburguesa Clásica", Category: "Comida", Price: 25000, Stock: 50, MinStock: 10}, Quantity: 2},
			},
			Subtotal: 50000,
			Tax:      9500,
			Total:    59500,
		},
	}
}

func TestBoltStore_FirstRun(t *testing.T) {
	s := setupBolt(t)

	catalog, err := s.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog != nil {
		t.Errorf("expected nil catalog on first run, got %v", catalog)
	}

	invoices, err := s.LoadInvoices()
	if err != nil {
		t.Fatalf("LoadInvoices() error = %v", err)
	}
	if invoices != nil {
		t.Errorf("expected nil invoice log on first run, got %v", invoices)
	}
}

func TestBoltStore_RoundTrip(t *testing.T) {
	s := setupBolt(t)

	t.Run("catalog", func(t *testing.T) {
		want := sampleCatalog()
		if err := s.SaveCatalog(want); err != nil {
			t.Fatalf("SaveCatalog() error = %v", err)
		}
		got, err := s.LoadCatalog()
		if err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("catalog round trip mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("invoices", func(t *testing.T) {
		want := sampleInvoices()
		if err := s.SaveInvoices(want); err != nil {
			t.Fatalf("SaveInvoices() error = %v", err)
		}
		got, err := s.LoadInvoices()
		if err != nil {
			t.Fatalf("LoadInvoices() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("invoice round trip mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("empty save is readable", func(t *testing.T) {
		if err := s.SaveCatalog(nil); err != nil {
			t.Fatalf("SaveCatalog(nil) error = %v", err)
		}
		got, err := s.LoadCatalog()
		if err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty catalog, got %+v", got)
		}
	})
}

func TestBoltStore_PersistedJSONShape(t *testing.T) {
	s := setupBolt(t)
	if err := s.SaveCatalog(sampleCatalog()); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}

	var raw []map[string]interface{}
	found, err := s.getBlob(KeyProducts, &raw)
	if err != nil || !found {
		t.Fatalf("getBlob() = %v, %v", found, err)
	}
	for _, key := range []string{"id", "name", "category", "price", "stock", "minStock"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("persisted product missing %q field", key)
		}
	}
}
