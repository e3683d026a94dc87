package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-BookingService/internal/domain"
	getAvailability "github.com/m04kA/SC-BookingService/internal/usecase/get_availability"
)

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailability.Request) (*getAvailability.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc GetAvailabilityUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/courts/{courtId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	slotStart := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailability.Response{
		CourtID:      1,
		CourtName:    "Корт 1",
		PricePerHour: 1500,
		Date:         day,
		Slots: []domain.Slot{
			{StartTime: slotStart, EndTime: slotStart.Add(time.Hour), IsAvailable: true, Price: 1500},
		},
	}}

	rec := doRequest(t, newRouter(uc), "/api/v1/courts/1/availability?date=2026-09-15")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, "2026-09-15", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:00", resp.Slots[0].EndTime)
	assert.True(t, resp.Slots[0].IsAvailable)
}

func TestHandle_MalformedDate(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/api/v1/courts/1/availability?date=15-09-2026")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, router, "/api/v1/courts/1/availability")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandle_InvalidCourtID(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeUseCase{}), "/api/v1/courts/abc/availability?date=2026-09-15")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandle_CourtNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailability.ErrCourtNotFound}

	rec := doRequest(t, newRouter(uc), "/api/v1/courts/999/availability?date=2026-09-15")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
