package get_rack_kpis

import (
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// Request модель запроса показателей шахматки
type Request struct {
	HotelID string
	From    string // YYYY-MM-DD, включительно
	To      string // YYYY-MM-DD, включительно
}

// Response показатели по дням в порядке дат
type Response struct {
	HotelID string
	From    types.Date
	To      types.Date
	Days    []domain.DailyKPI
}
