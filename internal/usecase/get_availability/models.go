package get_availability

import (
	"time"

	"github.com/m04kA/SC-BookingService/internal/domain"
)

// Request модель запроса доступности корта на дату
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	CourtID      int64         // ID корта
	CourtName    string        // Название корта
	PricePerHour float64       // Текущая часовая ставка корта
	Date         time.Time     // Дата, на которую запрашивались слоты
	Slots        []domain.Slot // Сетка слотов по возрастанию времени начала
}
