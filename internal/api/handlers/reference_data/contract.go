package reference_data

import (
	"context"

	"github.com/m04kA/SC-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSports(ctx context.Context) ([]models.NamedItem, error)
	ListProvinces(ctx context.Context) ([]models.NamedItem, error)
	ListLocalities(ctx context.Context, provinceID int64) ([]models.LocalityItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
