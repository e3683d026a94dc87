package get_owner_bookings

import (
	"context"

	"github.com/m04kA/SC-BookingService/internal/domain"
	"github.com/m04kA/SC-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOwnerBookings(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
