package export_rack_kpis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	exportRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/export_rack_kpis"
	getRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
	"github.com/m04kA/SMC-RackService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *exportRackKPIs.Request) (*exportRackKPIs.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*exportRackKPIs.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc ExportRackKPIsUseCase) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/hotels/{hotelId}/rack/kpis/export", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/H1/rack/kpis/export?from=2024-01-01&to=2024-01-07", nil))
	return rec
}

func TestHandle(t *testing.T) {
	content := []byte("PK-xlsx")
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &exportRackKPIs.Request{HotelID: "H1", From: "2024-01-01", To: "2024-01-07"}).
		Return(&exportRackKPIs.Response{FileName: "rack-kpis-H1-2024-01-01-2024-01-07.xlsx", Content: content}, nil)

	rec := serve(uc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exportRackKPIs.ContentType(), rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="rack-kpis-H1-2024-01-01-2024-01-07.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "7", rec.Header().Get("Content-Length"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestHandle_ErrorsShareKPIMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: getRackKPIs.ErrInvalidDateRange, wantStatus: http.StatusBadRequest},
		{err: fmt.Errorf("%w: 400 days", getRackKPIs.ErrRangeTooLong), wantStatus: http.StatusBadRequest},
		{err: getRackKPIs.ErrHotelNotFound, wantStatus: http.StatusNotFound},
		{err: exportRackKPIs.ErrBuildWorkbook, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
