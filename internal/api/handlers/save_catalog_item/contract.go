package save_catalog_item

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

type CatalogService interface {
	SaveCanopy(ctx context.Context, canopy *domain.Canopy) (*domain.Canopy, error)
	SavePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	SaveAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
