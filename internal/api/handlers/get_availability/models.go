package get_availability

import (
	"github.com/m04kA/SC-BookingService/internal/domain"
	getAvailability "github.com/m04kA/SC-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/SC-BookingService/pkg/types"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime   string  `json:"startTime"` // "08:00"
	EndTime     string  `json:"endTime"`   // "09:00"
	IsAvailable bool    `json:"isAvailable"`
	Price       float64 `json:"price"`
}

// AvailabilityResponse HTTP модель сетки доступности корта на дату
type AvailabilityResponse struct {
	CourtID      int64          `json:"courtId"`
	CourtName    string         `json:"courtName"`
	Date         string         `json:"date"`
	PricePerHour float64        `json:"pricePerHour"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:   types.NewTimeString(slot.StartTime).String(),
			EndTime:     types.NewTimeString(slot.EndTime).String(),
			IsAvailable: slot.IsAvailable,
			Price:       slot.Price,
		}
	}

	return &AvailabilityResponse{
		CourtID:      resp.CourtID,
		CourtName:    resp.CourtName,
		Date:         resp.Date.Format(domain.DateFormat),
		PricePerHour: resp.PricePerHour,
		Slots:        slots,
	}
}
