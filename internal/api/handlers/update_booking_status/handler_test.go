package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SC-BookingService/internal/service/bookings"
	"github.com/m04kA/SC-BookingService/internal/service/bookings/models"
)

type fakeService struct {
	lastReq *models.UpdateStatusRequest
	resp    *models.BookingResponse
	err     error
}

func (f *fakeService) UpdateStatus(_ context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc BookingService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")
	req.Header.Set("X-User-Role", "owner")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 5, Status: "confirmed"}}
	router := newRouter(svc)

	rec := doRequest(t, router, "/api/v1/bookings/5/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, int64(5), svc.lastReq.BookingID)
	assert.Equal(t, "confirmed", svc.lastReq.Status)
	assert.Equal(t, int64(42), svc.lastReq.Identity.UserID)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &fakeService{err: bookingsService.ErrInvalidStatus}

	rec := doRequest(t, newRouter(svc), "/api/v1/bookings/5/status", `{"status":"done"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandle_NotFoundAndForbiddenCollapse(t *testing.T) {
	// Чужое бронирование и несуществующее бронирование неразличимы в ответе
	for _, svcErr := range []error{bookingsService.ErrBookingNotFound, bookingsService.ErrAccessDenied} {
		svc := &fakeService{err: svcErr}
		rec := doRequest(t, newRouter(svc), "/api/v1/bookings/5/status", `{"status":"confirmed"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	router := newRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/5/status", strings.NewReader(`{"status":"confirmed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
