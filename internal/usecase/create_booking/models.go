package create_booking

import (
	"time"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // ID аутентифицированного пользователя
	CourtID       int64     // ID корта
	Date          time.Time // Дата бронирования (без времени)
	StartHour     int       // Час начала [0, 23]
	DurationHours int       // Длительность в целых часах [1, 4]
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64                // ID созданного бронирования
	UserID     int64                // ID пользователя
	CourtID    int64                // ID корта
	StartTime  time.Time            // Время начала
	EndTime    time.Time            // Время окончания
	TotalPrice float64              // Итоговая цена, зафиксированная при создании
	Status     domain.BookingStatus // Статус (pending)
	CreatedAt  time.Time            // Время создания
	UpdatedAt  time.Time            // Время обновления
}
