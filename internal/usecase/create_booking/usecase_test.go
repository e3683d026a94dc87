package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-BookingService/internal/domain"
	courtRepo "github.com/m04kA/SC-BookingService/internal/infra/storage/court"
)

// memBookingStore потокобезопасное in-memory хранилище бронирований
type memBookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (s *memBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	created := *booking
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

func (s *memBookingStore) FindOverlapping(_ context.Context, courtID int64, start, end time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var overlapping []*domain.Booking
	for _, b := range s.bookings {
		if b.CourtID == courtID && b.IsActive() && b.Overlaps(start, end) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

type fakeCourts struct {
	court *domain.Court
	err   error
}

func (f *fakeCourts) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, f.err
}

// serialTxManager выполняет fn под мьютексом: пары "проверка + вставка"
// разных горутин не перемешиваются, как при сериализуемых транзакциях
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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
	Name:         "Корт 1",
	PricePerHour: 1200,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(store *memBookingStore, now time.Time) *UseCase {
	uc := NewUseCase(store, &fakeCourts{court: testCourt}, &serialTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:        7,
		CourtID:       1,
		Date:          date(2026, 9, 15),
		StartHour:     10,
		DurationHours: 2,
	}
}

func TestExecute_Success(t *testing.T) {
	store := &memBookingStore{}
	uc := newTestUseCase(store, date(2026, 9, 14))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.True(t, resp.StartTime.Equal(time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)))
	assert.True(t, resp.EndTime.Equal(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)))
	// Цена фиксируется как ставка корта, умноженная на часы
	assert.Equal(t, 2400.0, resp.TotalPrice)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&memBookingStore{}, date(2026, 9, 14))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero court", func(r *Request) { r.CourtID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"negative start hour", func(r *Request) { r.StartHour = -1 }},
		{"start hour above 23", func(r *Request) { r.StartHour = 24 }},
		{"zero duration", func(r *Request) { r.DurationHours = 0 }},
		{"duration above max", func(r *Request) { r.DurationHours = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&memBookingStore{}, date(2026, 9, 16))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastStartHourToday(t *testing.T) {
	// Сегодняшняя дата, но запрошенный час уже истёк
	now := time.Date(2026, 9, 15, 11, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&memBookingStore{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastBooking)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(&memBookingStore{}, &fakeCourts{err: courtRepo.ErrCourtNotFound}, &serialTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: date(2026, 9, 14)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_SlotConflict(t *testing.T) {
	store := &memBookingStore{}
	uc := newTestUseCase(store, date(2026, 9, 14))

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Точно такой же интервал
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Частичное пересечение
	req := validRequest()
	req.StartHour = 11
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentBookingsAllowed(t *testing.T) {
	store := &memBookingStore{}
	uc := newTestUseCase(store, date(2026, 9, 14))

	_, err := uc.Execute(context.Background(), validRequest()) // [10:00, 12:00)
	require.NoError(t, err)

	// Стык в 12:00 не является пересечением
	req := validRequest()
	req.StartHour = 12
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// И стык в 08:00-10:00 перед существующим тоже
	req = validRequest()
	req.StartHour = 8
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ConcurrentRequests_OneWins(t *testing.T) {
	store := &memBookingStore{}
	uc := newTestUseCase(store, date(2026, 9, 14))

	const workers = 8
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			req := validRequest()
			req.UserID = userID
			_, err := uc.Execute(context.Background(), req)
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one request must win the slot")
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, store.bookings, 1)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	store := &memBookingStore{}
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        100,
		CourtID:   1,
		StartTime: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		Status:    domain.StatusCancelled,
	})
	store.nextID = 100

	uc := newTestUseCase(store, date(2026, 9, 14))

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}
