package get_rack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/service/snapshot"
	"github.com/m04kA/SMC-RackService/pkg/logger"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

type mockSnapshotService struct {
	mock.Mock
}

func (m *mockSnapshotService) ForPeriod(ctx context.Context, hotelID string, from, to types.Date) (*domain.Snapshot, error) {
	args := m.Called(ctx, hotelID, from, to)
	if s := args.Get(0); s != nil {
		return s.(*domain.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc SnapshotService, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/hotels/{hotelId}/rack", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func rackSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Rooms: []*domain.Room{
			{ID: "R1", Number: "101", Type: "double", Status: domain.RoomStatusClean},
		},
		Reservations: []*domain.Reservation{
			{ID: "A", RoomID: "R1", Start: types.MustDate("2024-01-01"), End: types.MustDate("2024-01-03"),
				Rate: 100, Status: domain.ReservationStatusConfirmed},
			{ID: "B", RoomID: "R1", Start: types.MustDate("2024-01-03"), End: types.MustDate("2024-01-04"),
				Rate: 90, Status: domain.ReservationStatusCancelled},
		},
	}
}

func TestHandle_ActiveOnlyByDefault(t *testing.T) {
	svc := &mockSnapshotService{}
	svc.On("ForPeriod", mock.Anything, "H1", types.MustDate("2024-01-01"), types.MustDate("2024-01-07")).
		Return(rackSnapshot(), nil)

	rec := serve(svc, "/api/v1/hotels/H1/rack?from=2024-01-01&to=2024-01-07")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "H1", resp.HotelID)
	require.Len(t, resp.Rooms, 1)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "A", resp.Reservations[0].ID)
	assert.Equal(t, 2, resp.Reservations[0].Nights)
}

func TestHandle_IncludeInactive(t *testing.T) {
	svc := &mockSnapshotService{}
	svc.On("ForPeriod", mock.Anything, "H1", mock.Anything, mock.Anything).Return(rackSnapshot(), nil)

	rec := serve(svc, "/api/v1/hotels/H1/rack?from=2024-01-01&to=2024-01-07&includeInactive=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reservations, 2)
}

func TestHandle_InvalidParams(t *testing.T) {
	urls := []string{
		"/api/v1/hotels/H1/rack",
		"/api/v1/hotels/H1/rack?from=2024-01-07&to=2024-01-01",
		"/api/v1/hotels/H1/rack?from=2024-01-01&to=2024-01-07&includeInactive=maybe",
	}

	for _, url := range urls {
		svc := &mockSnapshotService{}
		rec := serve(svc, url)
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		svc.AssertNotCalled(t, "ForPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestHandle_HotelNotFound(t *testing.T) {
	svc := &mockSnapshotService{}
	svc.On("ForPeriod", mock.Anything, "H1", mock.Anything, mock.Anything).Return(nil, snapshot.ErrHotelNotFound)

	rec := serve(svc, "/api/v1/hotels/H1/rack?from=2024-01-01&to=2024-01-07")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
