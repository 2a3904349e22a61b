package domain

// Product is a catalog entry. Low stock is a derived condition, never stored.
type Product struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string  `gorm:"index;size:200" json:"name"`
	Category string  `gorm:"size:64" json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `gorm:"column:min_stock" json:"minStock"`
}

// IsLowStock reports whether the product is at or below its alert threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// CartLine is one in-progress sale line: a product plus a quantity.
// Invoices snapshot cart lines verbatim, so the serialized shape is shared.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price * quantity for the line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Invoice is an immutable record of a completed sale. ID is the creation
// instant in unix milliseconds, bumped past the newest logged id when two
// invoices land in the same millisecond; Date is a display string, DateISO
// the same instant in RFC3339 UTC, DateOnly the UTC calendar date used as
// the daily report bucket key.
type Invoice struct {
	ID       int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Date     string     `gorm:"size:64" json:"date"`
	DateISO  string     `gorm:"column:date_iso;size:64" json:"dateISO"`
	DateOnly string     `gorm:"column:date_only;size:16;index" json:"dateOnly"`
	Client   string     `gorm:"size:200" json:"client"`
	Items    []CartLine `gorm:"serializer:json;type:text" json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

// UnitsSold returns the total item quantity across the invoice lines.
func (v Invoice) UnitsSold() int {
	var n int
	for _, item := range v.Items {
		n += item.Quantity
	}
	return n
}

// DailySummary aggregates one calendar day of invoices.
type DailySummary struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"totalSales"`
	InvoiceCount  int     `json:"invoiceCount"`
	UnitsSold     int     `json:"unitsSold"`
	AverageTicket float64 `json:"averageTicket"`
	MedianTicket  float64 `json:"medianTicket"`
}

// ProductSales is one row of the top-products ranking, grouped by product name.
type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}
