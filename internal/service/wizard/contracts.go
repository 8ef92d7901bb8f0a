package wizard

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// CatalogProvider интерфейс поставщика снимка каталога
type CatalogProvider interface {
	Snapshot() *domain.CatalogSnapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
