package app

import (
	"github.com/talkincode/toughpos/internal/domain"
	"github.com/talkincode/toughpos/internal/pos"
	"go.uber.org/zap"
)

// subscribeEvents wires the loggers that announce sales and stock alerts.
func (a *Application) subscribeEvents() {
	err := a.bus.Subscribe(pos.TopicInvoiceCreated, func(invoice domain.Invoice) {
		zap.L().Info("invoice generated",
			zap.Int64("id", invoice.ID),
			zap.String("client", invoice.Client),
			zap.Int("items", len(invoice.Items)),
			zap.String("total", pos.FormatMoney(invoice.Total)))
	})
	if err != nil {
		zap.S().Errorf("subscribe %s error %s", pos.TopicInvoiceCreated, err.Error())
	}

	err = a.bus.Subscribe(pos.TopicStockLow, func(p domain.Product) {
		zap.L().Warn("product dropped below stock threshold",
			zap.Int64("id", p.ID),
			zap.String("name", p.Name),
			zap.Int("stock", p.Stock),
			zap.Int("min_stock", p.MinStock))
	})
	if err != nil {
		zap.S().Errorf("subscribe %s error %s", pos.TopicStockLow, err.Error())
	}
}
