package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SC-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: история, списки владельца,
// смена статуса. Создание бронирований - отдельный use case.
type Service struct {
	bookingRepo BookingRepository
	courts      CourtDirectory
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, courts CourtDirectory, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courts:      courts,
		logger:      logger,
	}
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования всех комплексов владельца,
// отсортированные по времени начала
func (s *Service) GetOwnerBookings(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d", identity.UserID)

	if identity.Role != domain.RoleOwner && identity.Role != domain.RoleAdmin {
		s.logger.Warn("GetOwnerBookings: role=%s is not allowed", identity.Role)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%d", len(bookings), identity.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования.
// Владелец комплекса может устанавливать confirmed/cancelled бронированиям
// своих кортов, администратор - любой статус любому бронированию.
// Пересечения при смене статуса не перепроверяются: отмена одного
// бронирования не "разрешает" задним числом ранее отклонённый запрос,
// конфликт предотвращается исключительно при создании.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%d -> status=%s by user=%d (role=%s)",
		req.BookingID, req.Status, req.Identity.UserID, req.Identity.Role)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking=%d", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Определяем владельца комплекса корта для проверки прав
	ownerID, err := s.resolveCourtOwner(ctx, booking.CourtID)
	if err != nil {
		return nil, err
	}

	if !domain.CanSetBookingStatus(req.Identity, ownerID, newStatus) {
		s.logger.Warn("UpdateStatus: user=%d (role=%s) is not allowed to set status=%s on booking=%d",
			req.Identity.UserID, req.Identity.Role, newStatus, req.BookingID)
		return nil, ErrAccessDenied
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", req.BookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// resolveCourtOwner возвращает владельца комплекса, которому принадлежит корт
func (s *Service) resolveCourtOwner(ctx context.Context, courtID int64) (int64, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		s.logger.Error("resolveCourtOwner: failed to get court id=%d: %v", courtID, err)
		return 0, fmt.Errorf("%w: resolveCourtOwner - failed to get court: %v", ErrInternal, err)
	}

	ownerID, err := s.courts.OwnerOf(ctx, court.ComplexID)
	if err != nil {
		s.logger.Error("resolveCourtOwner: failed to get owner of complex id=%d: %v", court.ComplexID, err)
		return 0, fmt.Errorf("%w: resolveCourtOwner - failed to get complex owner: %v", ErrInternal, err)
	}

	return ownerID, nil
}
