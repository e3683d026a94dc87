package catalog

import (
	"context"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// CourtDirectory интерфейс справочника кортов
type CourtDirectory interface {
	Search(ctx context.Context, filter domain.CourtSearchFilter) ([]*domain.CourtSearchResult, error)
}

// MasterDataRepository интерфейс репозитория справочных данных
type MasterDataRepository interface {
	ListSports(ctx context.Context) ([]*domain.Sport, error)
	ListProvinces(ctx context.Context) ([]*domain.Province, error)
	ListLocalitiesByProvince(ctx context.Context, provinceID int64) ([]*domain.Locality, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
