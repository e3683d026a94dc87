package get_availability

import (
	"time"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// buildSlots строит сетку слотов на день: операционное окно 08:00-22:00
// разбивается на последовательные часовые интервалы - всегда ровно
// domain.SlotsPerDay слотов, без зазоров и наложений.
//
// Слот недоступен, если:
//   - с ним пересекается активное бронирование (полуоткрытая семантика:
//     bookingStart < slotEnd AND bookingEnd > slotStart); либо
//   - его начало строго раньше текущего момента (прошедшее время
//     не бронируется, даже если слот формально свободен).
//
// Цена каждого слота - часовая ставка корта на момент запроса.
func buildSlots(court *domain.Court, date time.Time, bookings []*domain.Booking, now time.Time) []domain.Slot {
	dayOpen := time.Date(date.Year(), date.Month(), date.Day(), domain.OpenHour, 0, 0, 0, date.Location())

	slots := make([]domain.Slot, 0, domain.SlotsPerDay)
	for i := 0; i < domain.SlotsPerDay; i++ {
		slotStart := dayOpen.Add(time.Duration(i) * time.Hour)
		slotEnd := slotStart.Add(time.Hour)

		isBooked := false
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			if booking.Overlaps(slotStart, slotEnd) {
				isBooked = true
				break
			}
		}

		isPast := slotStart.Before(now)

		slots = append(slots, domain.Slot{
			StartTime:   slotStart,
			EndTime:     slotEnd,
			IsAvailable: !isBooked && !isPast,
			Price:       court.PricePerHour,
		})
	}

	return slots
}
