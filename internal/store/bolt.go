package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/talkincode/toughpos/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var boltBucket = []byte("toughpos")

// BoltStore persists the catalog and the invoice log as two JSON blobs
// inside a single-file bbolt database.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt database")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) getBlob(key string, out interface{}) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(boltBucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, out)
	})
	if err != nil {
		return false, errors.Wrapf(err, "read %s", key)
	}
	return found, nil
}

func (s *BoltStore) putBlob(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), data)
	})
	return errors.Wrapf(err, "write %s", key)
}

func (s *BoltStore) LoadCatalog() ([]domain.Product, error) {
	var catalog []domain.Product
	found, err := s.getBlob(KeyProducts, &catalog)
	if err != nil || !found {
		return nil, err
	}
	return catalog, nil
}

func (s *BoltStore) SaveCatalog(catalog []domain.Product) error {
	if catalog == nil {
		catalog = []domain.Product{}
	}
	return s.putBlob(KeyProducts, catalog)
}

func (s *BoltStore) LoadInvoices() ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	found, err := s.getBlob(KeyInvoices, &invoices)
	if err != nil || !found {
		return nil, err
	}
	return invoices, nil
}

func (s *BoltStore) SaveInvoices(invoices []domain.Invoice) error {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return s.putBlob(KeyInvoices, invoices)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
