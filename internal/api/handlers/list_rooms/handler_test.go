package list_rooms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

type stubService struct {
	got  *models.ListRoomsRequest
	resp *models.RoomListResponse
	err  error
}

func (s *stubService) List(_ context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc RoomService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/rooms", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_FreeDuringDates(t *testing.T) {
	svc := &stubService{resp: &models.RoomListResponse{Rooms: []models.RoomResponse{{ID: 2, RoomNumber: "102"}}}}

	w := serve(svc, "/rooms?checkIn=2025-01-20&checkOut=2025-01-22&minCapacity=2")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got.CheckIn)
	require.NotNil(t, svc.got.CheckOut)
	assert.Equal(t, "2025-01-20", svc.got.CheckIn.String())
	assert.Equal(t, "2025-01-22", svc.got.CheckOut.String())
	assert.Equal(t, 2, *svc.got.MinCapacity)
	assert.Contains(t, w.Body.String(), `"roomNumber":"102"`)
}

func TestHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{"malformed date", "/rooms?checkIn=20-01-2025&checkOut=2025-01-22", nil},
		{"malformed capacity", "/rooms?minCapacity=two", nil},
		{"service rejects range", "/rooms?checkIn=2025-01-22&checkOut=2025-01-20", rooms.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&stubService{err: tt.err}, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
