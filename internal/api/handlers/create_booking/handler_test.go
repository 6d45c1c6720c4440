package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/bookings", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	r.Header.Set(middleware.HeaderUserID, "7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

const validBody = `{"roomId":1,"checkInDate":"2025-01-20","checkOutDate":"2025-01-22","numberOfGuests":2,"paymentMethod":"bank_transfer","promoCode":"SUMMER20"}`

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:            15,
		UserID:        7,
		RoomID:        1,
		TotalPrice:    decimal.RequireFromString("800000"),
		Status:        domain.StatusPending,
		PaymentMethod: domain.PaymentBankTransfer,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     time.Date(2025, 1, 10, 2, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 1, 10, 2, 0, 0, 0, time.UTC),
	}}

	w := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.UserID)
	assert.Equal(t, "2025-01-20", uc.got.CheckIn.String())
	assert.Equal(t, domain.PaymentBankTransfer, uc.got.PaymentMethod)
	assert.Contains(t, w.Body.String(), `"totalPrice":"800000"`)
	assert.Contains(t, w.Body.String(), `"paymentStatus":"pending"`)
}

func TestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"overlap", createBooking.ErrRoomNotAvailable, http.StatusConflict},
		{"unknown room", createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"inverted range", createBooking.ErrInvalidRange, http.StatusBadRequest},
		{"capacity", createBooking.ErrGuestsExceedCapacity, http.StatusBadRequest},
		{"expired promo", createBooking.ErrPromoExpired, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(&stubUseCase{err: tc.err}, validBody)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}

func TestHandler_ValidatesBody(t *testing.T) {
	bodies := map[string]string{
		"bad payment method": `{"roomId":1,"checkInDate":"2025-01-20","checkOutDate":"2025-01-22","numberOfGuests":2,"paymentMethod":"card"}`,
		"zero guests":        `{"roomId":1,"checkInDate":"2025-01-20","checkOutDate":"2025-01-22","numberOfGuests":0,"paymentMethod":"cash"}`,
		"bad date":           `{"roomId":1,"checkInDate":"20.01.2025","checkOutDate":"2025-01-22","numberOfGuests":2,"paymentMethod":"cash"}`,
		"not json":           `roomId=1`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := serve(uc, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.got)
		})
	}
}
