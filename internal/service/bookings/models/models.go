package models

import (
	"time"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	CourtID       int64   `json:"courtId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`

	// Денормализованные данные для списков
	CourtName   *string `json:"courtName,omitempty"`
	ComplexName *string `json:"complexName,omitempty"`
	SportName   *string `json:"sportName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // опциональный фильтр по статусу
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Identity  domain.Identity
	BookingID int64
	Status    string
}

// FromDomainBooking конвертирует domain.Booking в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		CourtID:       b.CourtID,
		StartTime:     b.StartTime.Format(time.RFC3339),
		EndTime:       b.EndTime.Format(time.RFC3339),
		DurationHours: b.DurationHours(),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CourtName:     b.CourtName,
		ComplexName:   b.ComplexName,
		SportName:     b.SportName,
		ClientName:    b.ClientName,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}
