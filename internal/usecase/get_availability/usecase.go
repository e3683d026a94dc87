package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-BookingService/internal/domain"
	courtRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/court"
)

// UseCase use case расчёта доступности корта на дату.
// Чисто читающая операция: сетка слотов вычисляется на каждый запрос
// и нигде не сохраняется. Доступность носит рекомендательный характер -
// авторитетная проверка выполняется при создании бронирования.
type UseCase struct {
	bookingRepo  BookingRepository
	courts       CourtDirectory
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, courts CourtDirectory, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courts:       courts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования корта на дату
	bookings, err := uc.bookingRepo.GetActiveByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку слотов
	now := uc.timeProvider.Now()
	slots := buildSlots(court, req.Date, bookings, now)

	uc.logger.Info("GetAvailability: built %d slots for court=%d, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID:      court.ID,
		CourtName:    court.Name,
		PricePerHour: court.PricePerHour,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
