package catalog

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListCanopies(ctx context.Context, ordered bool) ([]domain.Canopy, error)
	ListPackages(ctx context.Context, ordered bool) ([]domain.Package, error)
	ListAccessories(ctx context.Context, ordered bool) ([]domain.Accessory, error)
	UpsertCanopy(ctx context.Context, canopy *domain.Canopy) (*domain.Canopy, error)
	UpsertPackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	UpsertAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error)
	DeleteItem(ctx context.Context, collection domain.CollectionName, id int64) error
	UpdateSortOrders(ctx context.Context, collection domain.CollectionName, orderedIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
