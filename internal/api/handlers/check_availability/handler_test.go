package check_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

type stubUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/rooms/{roomId}/availability", h.Handle)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_Available(t *testing.T) {
	uc := &stubUseCase{resp: &checkAvailability.Response{
		RoomID:    1,
		CheckIn:   types.MustParseDate("2025-01-20"),
		CheckOut:  types.MustParseDate("2025-01-22"),
		Nights:    2,
		Available: true,
	}}

	w := serve(NewHandler(uc, nopLogger{}), "/rooms/1/availability?checkIn=2025-01-20&checkOut=2025-01-22")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), uc.got.RoomID)
	assert.JSONEq(t, `{"roomId":1,"checkInDate":"2025-01-20","checkOutDate":"2025-01-22","nights":2,"available":true,"conflicts":[]}`,
		w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad date", "/rooms/1/availability?checkIn=20-01-2025&checkOut=2025-01-22", nil, http.StatusBadRequest},
		{"missing dates", "/rooms/1/availability", nil, http.StatusBadRequest},
		{"bad room", "/rooms/x/availability?checkIn=2025-01-20&checkOut=2025-01-22", nil, http.StatusBadRequest},
		{"inverted range", "/rooms/1/availability?checkIn=2025-01-22&checkOut=2025-01-20", checkAvailability.ErrInvalidRange, http.StatusBadRequest},
		{"unknown room", "/rooms/9/availability?checkIn=2025-01-20&checkOut=2025-01-22", checkAvailability.ErrRoomNotFound, http.StatusNotFound},
		{"internal", "/rooms/1/availability?checkIn=2025-01-20&checkOut=2025-01-22", checkAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(NewHandler(&stubUseCase{err: tc.err}, nopLogger{}), tc.target)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
