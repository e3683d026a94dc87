package bookings

import (
	"context"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// CourtDirectory интерфейс справочника кортов: поиск корта и владельца комплекса
type CourtDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	OwnerOf(ctx context.Context, complexID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
