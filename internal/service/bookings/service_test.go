package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SC-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	byUser        []*domain.Booking
	byOwner       []*domain.Booking
	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetByOwnerID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.byOwner, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeCourts struct {
	court   *domain.Court
	ownerID int64
}

func (f *fakeCourts) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

func (f *fakeCourts) OwnerOf(_ context.Context, _ int64) (int64, error) {
	return f.ownerID, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const courtOwnerID = int64(42)

func newTestService(repo *fakeBookingRepo) *Service {
	courts := &fakeCourts{
		court:   &domain.Court{ID: 1, ComplexID: 10, Name: "Корт 1", PricePerHour: 1000},
		ownerID: courtOwnerID,
	}
	return NewService(repo, courts, nopLogger{})
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         5,
		UserID:     7,
		CourtID:    1,
		StartTime:  time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		TotalPrice: 2000,
		Status:     domain.StatusPending,
	}
}

func TestUpdateStatus_OwnerConfirms(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: testBooking()}}
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: courtOwnerID, Role: domain.RoleOwner},
		BookingID: 5,
		Status:    "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(5), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_AdminSetsPending(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: booking}}
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: 1, Role: domain.RoleAdmin},
		BookingID: 5,
		Status:    "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdateStatus_ForeignOwnerDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: testBooking()}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: 99, Role: domain.RoleOwner},
		BookingID: 5,
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.updatedID)
}

func TestUpdateStatus_OwnerCannotResetToPending(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: testBooking()}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: courtOwnerID, Role: domain.RoleOwner},
		BookingID: 5,
		Status:    "pending",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ClientDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: testBooking()}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: 7, Role: domain.RoleClient},
		BookingID: 5,
		Status:    "cancelled",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: testBooking()}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: 1, Role: domain.RoleAdmin},
		BookingID: 5,
		Status:    "done",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		Identity:  domain.Identity{UserID: 1, Role: domain.RoleAdmin},
		BookingID: 404,
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{testBooking()}}
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(5), resp.Bookings[0].ID)
	assert.Equal(t, 2, resp.Bookings[0].DurationHours)
}

func TestGetUserBookings_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	badStatus := "done"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Status: &badStatus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOwnerBookings_RoleCheck(t *testing.T) {
	repo := &fakeBookingRepo{byOwner: []*domain.Booking{testBooking()}}
	svc := newTestService(repo)

	resp, err := svc.GetOwnerBookings(context.Background(), domain.Identity{UserID: courtOwnerID, Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetOwnerBookings(context.Background(), domain.Identity{UserID: 7, Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
