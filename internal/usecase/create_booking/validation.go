package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour < domain.MinStartHour || req.StartHour > domain.MaxStartHour {
		return fmt.Errorf("%w: startHour must be between %d and %d",
			ErrInvalidInput, domain.MinStartHour, domain.MaxStartHour)
	}

	if req.DurationHours < domain.MinBookingDurationHours || req.DurationHours > domain.MaxBookingDurationHours {
		return fmt.Errorf("%w: durationHours must be between %d and %d",
			ErrInvalidInput, domain.MinBookingDurationHours, domain.MaxBookingDurationHours)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не раньше текущей даты
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrPastDate
	}
	return nil
}

// bookingInterval вычисляет интервал [start, end) бронирования:
// начало - дата в StartHour:00:00 локального времени комплекса
func bookingInterval(req *Request) (start, end time.Time) {
	start = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.StartHour, 0, 0, 0, req.Date.Location())
	end = start.Add(time.Duration(req.DurationHours) * time.Hour)
	return start, end
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
