package pos

import (
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/talkincode/toughpos/internal/domain"
	"github.com/talkincode/toughpos/internal/store"
	"go.uber.org/zap"
)

// Event topics published by the service.
const (
	TopicInvoiceCreated = "pos:invoice:created"
	TopicStockLow       = "pos:stock:low"
)

// Service owns the whole application state: catalog, cart, client name and
// invoice log. Every mutation runs under one lock, applies the in-memory
// transformation, then issues an explicit best-effort save of the affected
// key. A failed save is logged and swallowed; in-memory state stays
// authoritative for the session.
type Service struct {
	mu    sync.Mutex
	repo  store.Repository
	bus   evbus.Bus
	idgen IDGenerator
	now   func() time.Time

	strict bool

	catalog    []domain.Product
	cart       []domain.CartLine
	clientName string
	invoices   []domain.Invoice
}

func NewService(repo store.Repository, bus evbus.Bus, idgen IDGenerator, strict bool) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		idgen:  idgen,
		now:    time.Now,
		strict: strict,
	}
}

// Load reads persisted state, seeding the demo catalog on first run or when
// the stored blob is unreadable. The invoice log degrades to empty.
func (s *Service) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.repo.LoadCatalog()
	switch {
	case err != nil:
		zap.L().Error("failed to load catalog, using seed data", zap.Error(err))
		s.catalog = DefaultCatalog()
	case catalog == nil:
		zap.L().Info("no persisted catalog, installing seed data")
		s.catalog = DefaultCatalog()
		s.persistCatalog()
	default:
		s.catalog = catalog
	}

	invoices, err := s.repo.LoadInvoices()
	if err != nil {
		zap.L().Error("failed to load invoice log, starting empty", zap.Error(err))
		invoices = nil
	}
	s.invoices = invoices
}

// Catalog returns the products matching the query (substring on name or
// category, empty matches all), in catalog order.
func (s *Service) Catalog(query string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterCatalog(copyCatalog(s.catalog), query)
}

// Product looks up one catalog entry.
func (s *Service) Product(id int64) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := FindProduct(s.catalog, id)
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// UpsertProduct creates a product or, when existingID is non-zero, replaces
// that entry's fields while keeping its id.
func (s *Service) UpsertProduct(data ProductData, existingID int64) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID != 0 {
		if _, ok := FindProduct(s.catalog, existingID); !ok {
			return domain.Product{}, ErrNotFound
		}
	}

	s.catalog = UpsertProduct(s.catalog, data, existingID, s.idgen)
	s.persistCatalog()

	if existingID != 0 {
		p, _ := FindProduct(s.catalog, existingID)
		return p, nil
	}
	return s.catalog[len(s.catalog)-1], nil
}

// RemoveProduct deletes a catalog entry; absent ids are a no-op.
func (s *Service) RemoveProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = RemoveProduct(s.catalog, id)
	s.persistCatalog()
}

// LowStockProducts returns the entries at or below their alert threshold.
func (s *Service) LowStockProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LowStock(s.catalog)
}

// AddToCart appends one unit of the product to the cart. Zero-stock
// products are rejected here, at the caller side of the cart, as the cart
// itself performs no stock checks.
func (s *Service) AddToCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := FindProduct(s.catalog, productID)
	if !ok {
		return ErrNotFound
	}
	if product.Stock == 0 {
		return ErrOutOfStock
	}
	if s.strict {
		for _, line := range s.cart {
			if line.ID == productID && line.Quantity+1 > product.Stock {
				return ErrInsufficientStock
			}
		}
	}

	s.cart = AddLine(s.cart, product)
	return nil
}

// SetCartQuantity replaces a line's quantity; zero or less removes the line.
func (s *Service) SetCartQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strict && quantity > 0 {
		if product, ok := FindProduct(s.catalog, productID); ok && quantity > product.Stock {
			return ErrInsufficientStock
		}
	}

	s.cart = SetQuantity(s.cart, productID, quantity)
	return nil
}

// ClearCart drops every cart line.
func (s *Service) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// SetClientName stages the client name for the next invoice.
func (s *Service) SetClientName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientName = name
}

// CartState returns a snapshot of the in-progress sale.
func (s *Service) CartState() ([]domain.CartLine, float64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)
	return lines, Subtotal(s.cart), s.clientName
}

// GenerateInvoice converts the cart into an invoice. On success the four
// state effects land together under the lock: invoice prepended to the log,
// catalog replaced with decremented stock, cart cleared, client name
// cleared. Both persistence keys are then saved best-effort.
func (s *Service) GenerateInvoice(clientName string) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := clientName
	if client == "" {
		client = s.clientName
	}

	lowBefore := make(map[int64]bool)
	for _, p := range LowStock(s.catalog) {
		lowBefore[p.ID] = true
	}

	invoice, updated, err := GenerateInvoice(s.cart, client, s.catalog, s.now(), s.strict)
	if err != nil {
		return domain.Invoice{}, err
	}

	// unix-milli ids can collide when invoices land within the same
	// millisecond; keep the log strictly descending
	if len(s.invoices) > 0 && invoice.ID <= s.invoices[0].ID {
		invoice.ID = s.invoices[0].ID + 1
	}

	s.invoices = append([]domain.Invoice{invoice}, s.invoices...)
	s.catalog = updated
	s.cart = nil
	s.clientName = ""

	s.persistCatalog()
	s.persistInvoices()

	if s.bus != nil {
		s.bus.Publish(TopicInvoiceCreated, invoice)
		// announce only products this sale pushed below their threshold
		for _, p := range LowStock(s.catalog) {
			if !lowBefore[p.ID] {
				s.bus.Publish(TopicStockLow, p)
			}
		}
	}

	return invoice, nil
}

// Invoices returns the invoice log, newest first.
func (s *Service) Invoices() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := make([]domain.Invoice, len(s.invoices))
	copy(log, s.invoices)
	return log
}

// DailyReport builds the report view for one day bucket.
func (s *Service) DailyReport(dateOnly string) (domain.DailySummary, []domain.ProductSales, []domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dayInvoices := SalesForDate(s.invoices, dateOnly)
	summary := Summarize(dayInvoices)
	summary.Date = dateOnly
	return summary, TopProducts(dayInvoices, DefaultTopLimit), dayInvoices
}

// AvailableDates returns every day bucket with sales, most recent first.
func (s *Service) AvailableDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AvailableDates(s.invoices)
}

func (s *Service) persistCatalog() {
	if err := s.repo.SaveCatalog(s.catalog); err != nil {
		zap.L().Error("failed to persist catalog", zap.Error(err))
	}
}

func (s *Service) persistInvoices() {
	if err := s.repo.SaveInvoices(s.invoices); err != nil {
		zap.L().Error("failed to persist invoice log", zap.Error(err))
	}
}

func copyCatalog(catalog []domain.Product) []domain.Product {
	next := make([]domain.Product, len(catalog))
	copy(next, catalog)
	return next
}
