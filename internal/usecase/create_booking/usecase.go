package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/court"
)

// UseCase use case создания бронирования.
// Пара "проверка пересечений + вставка" выполняется одной сериализуемой
// транзакцией: из двух конкурирующих запросов на пересекающиеся интервалы
// одного корта ровно один фиксируется, второй получает ErrSlotConflict.
type UseCase struct {
	bookingRepo  BookingRepository
	courts       CourtDirectory
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courts CourtDirectory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courts:       courts,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, startHour=%d, duration=%dh",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не раньше сегодняшней
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем корт
	court, err := uc.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 5. Вычисляем интервал и проверяем, что начало не в прошлом
	startTime, endTime := bookingInterval(req)
	if startTime.Before(now) {
		uc.logger.Warn("CreateBooking: start time %s already passed", startTime.Format("2006-01-02 15:04"))
		return nil, ErrPastBooking
	}

	// 6. Фиксируем цену на момент создания
	totalPrice := court.PricePerHour * float64(req.DurationHours)

	var result *domain.Booking

	// 7. Проверка пересечений и вставка - одна атомарная единица.
	// FindOverlapping внутри транзакции блокирует найденные строки (FOR UPDATE),
	// exclusion constraint в БД отсекает проигравшего при одновременном коммите.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.CourtID, startTime, endTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: court=%d already has %d active booking(s) in [%s, %s)",
				req.CourtID, len(overlapping),
				startTime.Format("2006-01-02 15:04"), endTime.Format("2006-01-02 15:04"))
			return ErrSlotConflict
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     req.UserID,
			CourtID:    req.CourtID,
			StartTime:  startTime,
			EndTime:    endTime,
			TotalPrice: totalPrice,
			Status:     domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: concurrent insert won the slot on court=%d", req.CourtID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		CourtID:    result.CourtID,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		TotalPrice: result.TotalPrice,
		Status:     result.Status,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
