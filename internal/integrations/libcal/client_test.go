package libcal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func newTestClient(url string) *Client {
	return NewClient(
		url,
		Options{LocationID: 1729, GroupID: 19125, PageSize: 18},
		2*time.Second,
		rate.NewLimiter(rate.Inf, 1),
		logger.NewNop(),
	)
}

func TestClient_FetchSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1729", r.PostForm.Get("lid"))
		assert.Equal(t, "19125", r.PostForm.Get("gid"))
		assert.Equal(t, "2025-09-01", r.PostForm.Get("start"))
		assert.Equal(t, "2025-09-02", r.PostForm.Get("end"))
		assert.Equal(t, "18", r.PostForm.Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slots":[
			{"start":"2025-09-01 10:00:00","end":"2025-09-01 10:30:00","itemId":105593,"checksum":"abc"},
			{"start":"2025-09-01 10:30:00","end":"2025-09-01 11:00:00","itemId":105593,"className":"s-lc-eq-checkout"}
		]}`))
	}))
	defer srv.Close()

	slots, err := newTestClient(srv.URL).FetchSlots(context.Background(), types.NewDate(2025, 9, 1), types.NewDate(2025, 9, 2))
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, int64(105593), slots[0].ItemID)
	assert.False(t, slots[0].IsBooked())
	assert.True(t, slots[1].IsBooked())
}

func TestClient_FetchSlots_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrUnavailable},
		{name: "broken json", status: http.StatusOK, body: `{"slots":[`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).FetchSlots(context.Background(), types.NewDate(2025, 9, 1), types.NewDate(2025, 9, 2))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_FetchSlots_CancelledContext(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	limiter.Allow() // забираем единственный токен

	client := NewClient("http://127.0.0.1:0", Options{}, time.Second, limiter, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.FetchSlots(ctx, types.NewDate(2025, 9, 1), types.NewDate(2025, 9, 2))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSlot_Parse(t *testing.T) {
	date, start, end, err := Slot{Start: "2026-02-21 17:00:00", End: "2026-02-21 17:30:00"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2026, 2, 21), date)
	assert.Equal(t, "17:00", start.String())
	assert.Equal(t, "17:30", end.String())

	_, _, end, err = Slot{Start: "2026-02-21 23:30:00", End: "2026-02-22 00:00:00"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, "23:59", end.String())

	_, _, _, err = Slot{Start: "21/02/2026 17:00", End: "2026-02-21 17:30:00"}.Parse()
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
