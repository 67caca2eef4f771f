package get_rack_kpis

import (
	getRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// DailyKPIResponse показатели одного дня для заголовка шахматки
type DailyKPIResponse struct {
	Date          types.Date `json:"date"`
	OccupancyRate int        `json:"occupancyRate"`
	AveragePrice  int        `json:"averagePrice"`
	Trend         string     `json:"trend"`
	OccupiedRooms int        `json:"occupiedRooms"`
	TotalRooms    int        `json:"totalRooms"`
}

type RackKPIsResponse struct {
	HotelID string             `json:"hotelId"`
	From    types.Date         `json:"from"`
	To      types.Date         `json:"to"`
	Days    []DailyKPIResponse `json:"days"`
}

func FromUseCaseResponse(resp *getRackKPIs.Response) *RackKPIsResponse {
	days := make([]DailyKPIResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DailyKPIResponse{
			Date:          d.Date,
			OccupancyRate: d.OccupancyRate,
			AveragePrice:  d.AveragePrice,
			Trend:         string(d.Trend),
			OccupiedRooms: d.OccupiedRooms,
			TotalRooms:    d.TotalRooms,
		})
	}

	return &RackKPIsResponse{
		HotelID: resp.HotelID,
		From:    resp.From,
		To:      resp.To,
		Days:    days,
	}
}
