package get_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.RoomResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, "lib-305").Return(&models.RoomResponse{ID: "lib-305", Name: "LIB 305"}, nil)
	svc.On("GetByID", mock.Anything, "nope").Return(nil, rooms.ErrRoomNotFound)
	svc.On("GetByID", mock.Anything, "boom").Return(nil, rooms.ErrInternal)

	router := mux.NewRouter()
	router.HandleFunc("/rooms/{roomId}", NewHandler(svc, logger.NewNop()).Handle)

	tests := map[string]int{
		"/rooms/lib-305": http.StatusOK,
		"/rooms/nope":    http.StatusNotFound,
		"/rooms/boom":    http.StatusInternalServerError,
	}
	for path, status := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}
