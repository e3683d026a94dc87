package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus валидирует и конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking represents a reservation of one court for one contiguous time interval.
// Time range, court, user and total price are frozen at creation; only the
// status changes afterwards.
type Booking struct {
	ID         int64
	UserID     int64
	CourtID    int64
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice float64
	Status     BookingStatus

	// Denormalized data for owner/admin listings
	CourtName   *string
	ComplexName *string
	SportName   *string
	ClientName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in the overlap invariant
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DurationHours длительность бронирования в целых часах
func (b *Booking) DurationHours() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Hour)
}

// Overlaps проверяет пересечение с интервалом [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(b.StartTime, b.EndTime, start, end)
}

// IntervalsOverlap каноническая проверка пересечения двух полуоткрытых
// интервалов [aStart, aEnd) и [bStart, bEnd).
// Строгие неравенства: интервалы, граничащие ровно в одной точке, НЕ пересекаются.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
