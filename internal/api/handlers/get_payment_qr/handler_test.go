package get_payment_qr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

type stubService struct {
	resp    *models.PaymentInstructionsResponse
	err     error
	isStaff bool
}

func (s *stubService) GetPaymentInstructions(_ context.Context, _ int64, _ int64, isStaff bool) (*models.PaymentInstructionsResponse, error) {
	s.isStaff = isStaff
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, target string, headers map[string]string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/bookings/{bookingId}/payment-qr", NewHandler(svc, nopLogger{}).Handle)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler_JSONAndPNG(t *testing.T) {
	svc := &stubService{resp: &models.PaymentInstructionsResponse{
		BookingID: 15,
		Amount:    800000,
		Memo:      "DATPHONG 15",
		QRCodePNG: []byte{0x89, 'P', 'N', 'G'},
	}}
	headers := map[string]string{middleware.HeaderUserID: "7"}

	w := serve(svc, "/bookings/15/payment-qr", headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memo":"DATPHONG 15"`)
	assert.False(t, svc.isStaff)

	w = serve(svc, "/bookings/15/payment-qr?format=png", headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes())
}

func TestHandler_Errors(t *testing.T) {
	headers := map[string]string{middleware.HeaderUserID: "7"}

	w := serve(&stubService{err: bookings.ErrPaymentNotApplicable}, "/bookings/15/payment-qr", headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(&stubService{err: bookings.ErrAccessDenied}, "/bookings/15/payment-qr", headers)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(&stubService{}, "/bookings/15/payment-qr", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
