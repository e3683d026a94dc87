package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-BookingService/internal/domain"
	courtRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/court"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeCourts struct {
	court *domain.Court
	err   error
}

func (f *fakeCourts) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testCourt = &domain.Court{
	ID:           1,
	ComplexID:    10,
	SportID:      3,
	Name:         "Центральный корт",
	PricePerHour: 1500,
}

func newTestUseCase(bookings []*domain.Booking, now time.Time) *UseCase {
	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeCourts{court: testCourt}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

func TestExecute_FullDayGrid(t *testing.T) {
	day := date(2026, 9, 15)
	uc := newTestUseCase(nil, at(day, 0)) // полночь, все слоты в будущем

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: day})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, testCourt.ID, resp.CourtID)
	assert.Equal(t, testCourt.PricePerHour, resp.PricePerHour)

	// Сетка покрывает окно 08:00-22:00 без зазоров и наложений
	assert.True(t, resp.Slots[0].StartTime.Equal(at(day, domain.OpenHour)))
	assert.True(t, resp.Slots[len(resp.Slots)-1].EndTime.Equal(at(day, domain.CloseHour)))
	for i, slot := range resp.Slots {
		assert.Equal(t, time.Hour, slot.EndTime.Sub(slot.StartTime))
		assert.Equal(t, testCourt.PricePerHour, slot.Price)
		assert.True(t, slot.IsAvailable, "slot %d should be available", i)
		if i > 0 {
			assert.True(t, slot.StartTime.Equal(resp.Slots[i-1].EndTime), "slot %d not contiguous", i)
		}
	}
}

func TestExecute_BookedSlotsUnavailable(t *testing.T) {
	day := date(2026, 9, 15)
	bookings := []*domain.Booking{
		{
			CourtID:   1,
			StartTime: at(day, 10),
			EndTime:   at(day, 12),
			Status:    domain.StatusConfirmed,
		},
	}
	uc := newTestUseCase(bookings, at(day, 0))

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: day})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		hour := slot.StartTime.Hour()
		if hour == 10 || hour == 11 {
			assert.False(t, slot.IsAvailable, "slot %02d:00 overlaps the booking", hour)
		} else {
			assert.True(t, slot.IsAvailable, "slot %02d:00 should stay available", hour)
		}
	}
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	day := date(2026, 9, 15)
	bookings := []*domain.Booking{
		{
			CourtID:   1,
			StartTime: at(day, 10),
			EndTime:   at(day, 11),
			Status:    domain.StatusCancelled,
		},
	}
	uc := newTestUseCase(bookings, at(day, 0))

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: day})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_PastSlotsUnavailable(t *testing.T) {
	day := date(2026, 9, 15)
	// Текущий момент - середина дня: 10:30
	now := at(day, 10).Add(30 * time.Minute)
	uc := newTestUseCase(nil, now)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: day})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		hour := slot.StartTime.Hour()
		if hour <= 10 {
			assert.False(t, slot.IsAvailable, "slot %02d:00 already started", hour)
		} else {
			assert.True(t, slot.IsAvailable, "slot %02d:00 is in the future", hour)
		}
	}
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCourts{err: courtRepo.ErrCourtNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 999, Date: date(2026, 9, 15)})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CourtID: 0, Date: date(2026, 9, 15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
