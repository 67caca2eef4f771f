package resolve_move

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/internal/api/handlers"
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/internal/rack"
	resolveMove "github.com/m04kA/SMC-RackService/internal/usecase/resolve_move"
	"github.com/m04kA/SMC-RackService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *resolveMove.Request) (*resolveMove.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*resolveMove.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc ResolveMoveUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/hotels/{hotelId}/rack/moves/{moveId}/resolve", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels/H1/rack/moves/m-1/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Applied(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &resolveMove.Request{HotelID: "H1", MoveID: "m-1", Choice: "swap"}).
		Return(&resolveMove.Response{
			Status:     resolveMove.StatusApplied,
			Resolution: domain.ResolutionSwap,
			Assignments: []domain.Assignment{
				{ReservationID: "A", NewRoomID: "R2"},
				{ReservationID: "B", NewRoomID: "R1"},
			},
		}, nil)

	rec := serve(uc, `{"choice":"swap"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolveMoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "applied", resp.Status)
	assert.Equal(t, "swap", resp.Resolution)
	assert.Len(t, resp.Assignments, 2)
}

func TestHandle_NoVacantRoom(t *testing.T) {
	uc := &mockUseCase{}
	noRoom := &rack.NoVacantRoomError{ReservationIDs: []string{"B", "C"}}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", resolveMove.ErrNoVacantRoom, noRoom))

	rec := serve(uc, `{"choice":"relocate"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		handlers.ErrorResponse
		Details NoVacantRoomDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"B", "C"}, resp.Details.UnplacedReservationIDs)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown choice", err: resolveMove.ErrUnknownChoice, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: resolveMove.ErrInvalidInput, wantStatus: http.StatusUnprocessableEntity},
		{name: "not found", err: resolveMove.ErrMoveNotFound, wantStatus: http.StatusNotFound},
		{name: "in progress", err: resolveMove.ErrResolutionInProgress, wantStatus: http.StatusConflict},
		{name: "swap not available", err: resolveMove.ErrSwapNotAvailable, wantStatus: http.StatusConflict},
		{name: "stale", err: resolveMove.ErrStaleSnapshot, wantStatus: http.StatusConflict},
		{name: "internal", err: resolveMove.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, `{"choice":"swap"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
