package delete_catalog_item

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

type CatalogService interface {
	Delete(ctx context.Context, collection domain.CollectionName, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
