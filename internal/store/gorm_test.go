package store

import (
	"reflect"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkincode/toughpos/internal/domain"
)

func setupGorm(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStore_FirstRun(t *testing.T) {
	s := setupGorm(t)

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

func TestGormStore_CatalogRoundTrip(t *testing.T) {
	s := setupGorm(t)
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

	// a second save fully replaces the previous set
	if err := s.SaveCatalog(want[:1]); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	got, err = s.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 product after replace, got %d", len(got))
	}
}

func TestGormStore_InvoicesNewestFirst(t *testing.T) {
	s := setupGorm(t)
	invoices := sampleInvoices()
	older := invoices[0]
	older.ID = invoices[0].ID - 1000
	log := []domain.Invoice{invoices[0], older}

	if err := s.SaveInvoices(log); err != nil {
		t.Fatalf("SaveInvoices() error = %v", err)
	}
	got, err := s.LoadInvoices()
	if err != nil {
		t.Fatalf("LoadInvoices() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(got))
	}
	if got[0].ID <= got[1].ID {
		t.Error("invoice log must load newest first")
	}
	if !reflect.DeepEqual(got[0].Items, invoices[0].Items) {
		t.Errorf("item snapshots did not survive the round trip:\n got %+v\nwant %+v",
			got[0].Items, invoices[0].Items)
	}
}
