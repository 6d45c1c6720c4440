package update_payment_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

type stubService struct {
	got  *models.UpdatePaymentStatusRequest
	resp *models.BookingResponse
	err  error
}

func (s *stubService) UpdatePaymentStatus(_ context.Context, _ int64, req *models.UpdatePaymentStatusRequest) (*models.BookingResponse, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, body string, role string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireStaff)
	admin.HandleFunc("/bookings/{bookingId}/payment-status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, "/admin/bookings/15/payment-status", strings.NewReader(body))
	r.Header.Set(middleware.HeaderUserID, "1")
	if role != "" {
		r.Header.Set(middleware.HeaderUserRole, role)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler_MarkPaid(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: 15, Status: "confirmed", PaymentStatus: "paid"}}

	w := serve(svc, `{"paymentStatus":"paid"}`, "staff")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.True(t, svc.got.IsStaff)
	assert.Equal(t, "paid", svc.got.PaymentStatus)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestHandler_Rejections(t *testing.T) {
	t.Run("customer role", func(t *testing.T) {
		svc := &stubService{}
		w := serve(svc, `{"paymentStatus":"paid"}`, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Nil(t, svc.got)
	})

	t.Run("unknown status", func(t *testing.T) {
		w := serve(&stubService{}, `{"paymentStatus":"refunded"}`, "admin")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		w := serve(&stubService{err: bookings.ErrInvalidPaymentTransition}, `{"paymentStatus":"paid"}`, "admin")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
