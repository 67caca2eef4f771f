package export_rack_kpis

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	getRackKPIsHandler "github.com/m04kA/SMC-RackService/internal/api/handlers/get_rack_kpis"
	exportRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/export_rack_kpis"
)

type Handler struct {
	useCase ExportRackKPIsUseCase
	logger  Logger
}

func NewHandler(useCase ExportRackKPIsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rack/kpis/export?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &exportRackKPIs.Request{
		HotelID: hotelID,
		From:    query.Get("from"),
		To:      query.Get("to"),
	})
	if err != nil {
		getRackKPIsHandler.RespondKPIError(w, h.logger, "GET /rack/kpis/export", hotelID, err)
		return
	}

	w.Header().Set("Content-Type", exportRackKPIs.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /rack/kpis/export - Failed to write response: hotel_id=%s, error=%v", hotelID, err)
	}
}
