package delete_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
)

type stubService struct{ err error }

func (s stubService) Delete(context.Context, int64) error { return s.err }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"deleted", "/admin/rooms/1", nil, http.StatusNoContent},
		{"has bookings", "/admin/rooms/1", rooms.ErrRoomHasBookings, http.StatusConflict},
		{"not found", "/admin/rooms/9", rooms.ErrRoomNotFound, http.StatusNotFound},
		{"bad id", "/admin/rooms/abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/admin/rooms/{roomId}", NewHandler(stubService{err: tt.err}, nopLogger{}).Handle).
				Methods(http.MethodDelete)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.target, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
