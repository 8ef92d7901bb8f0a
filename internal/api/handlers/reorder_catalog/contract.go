package reorder_catalog

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

type CatalogService interface {
	Reorder(ctx context.Context, collection domain.CollectionName, orderedIDs []int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
