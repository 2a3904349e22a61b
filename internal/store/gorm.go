package store

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/talkincode/toughpos/config"
	"github.com/talkincode/toughpos/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore keeps the catalog and the invoice log in relational tables,
// for installations that prefer an embedded sqlite file or a postgres
// server over the default key-value file. Save methods replace the full
// set inside one transaction, mirroring the blob-store semantics.
type GormStore struct {
	db *gorm.DB
}

func OpenGorm(cfg config.DBConfig) (*GormStore, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	switch cfg.Type {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, errors.Errorf("unsupported gorm database type %q", cfg.Type)
	}
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.AutoMigrate(domain.Tables...); err != nil {
		return nil, errors.Wrap(err, "migrate tables")
	}

	return NewGormStore(db), nil
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadCatalog() ([]domain.Product, error) {
	var count int64
	if err := s.db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "count products")
	}
	if count == 0 {
		return nil, nil
	}
	var catalog []domain.Product
	if err := s.db.Order("id asc").Find(&catalog).Error; err != nil {
		return nil, errors.Wrap(err, "load products")
	}
	return catalog, nil
}

func (s *GormStore) SaveCatalog(catalog []domain.Product) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Product{}).Error; err != nil {
			return err
		}
		if len(catalog) == 0 {
			return nil
		}
		return tx.Create(&catalog).Error
	})
	return errors.Wrap(err, "save products")
}

func (s *GormStore) LoadInvoices() ([]domain.Invoice, error) {
	var count int64
	if err := s.db.Model(&domain.Invoice{}).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "count invoices")
	}
	if count == 0 {
		return nil, nil
	}
	var invoices []domain.Invoice
	if err := s.db.Order("id desc").Find(&invoices).Error; err != nil {
		return nil, errors.Wrap(err, "load invoices")
	}
	return invoices, nil
}

func (s *GormStore) SaveInvoices(invoices []domain.Invoice) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Invoice{}).Error; err != nil {
			return err
		}
		if len(invoices) == 0 {
			return nil
		}
		return tx.Create(&invoices).Error
	})
	return errors.Wrap(err, "save invoices")
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
