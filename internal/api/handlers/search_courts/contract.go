package search_courts

import (
	"context"

	"github.com/m04kA/SC-BookingService/internal/domain"
	"github.com/m04kA/SC-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	SearchCourts(ctx context.Context, filter domain.CourtSearchFilter) (*models.CourtSearchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
