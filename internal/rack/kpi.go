package rack

import (
	"math"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// ComputeDailyKPIs считает загрузку и среднюю цену для каждой даты из days, в том же порядке
//
// Загрузка = round(100 * занятые / доступные), доступными считаются комнаты не в out_of_order.
// Средняя цена = round(среднее rate по бронированиям, занимающим дату).
// Тренд первой даты всегда stable, для остальных сравнивается со средней ценой предыдущей даты
// с мертвой зоной ±5%.
func ComputeDailyKPIs(rooms []*domain.Room, reservations []*domain.Reservation, days []types.Date) []domain.DailyKPI {
	totalRooms := 0
	for _, room := range rooms {
		if room.CountsForCapacity() {
			totalRooms++
		}
	}

	active := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.IsActive() {
			active = append(active, r)
		}
	}

	result := make([]domain.DailyKPI, len(days))

	for i, day := range days {
		occupied := 0
		revenue := 0.0

		for _, r := range active {
			if OccupiesDate(r, day) {
				occupied++
				revenue += r.Rate
			}
		}

		kpi := domain.DailyKPI{
			Date:          day,
			OccupancyRate: occupancyRate(occupied, totalRooms),
			Trend:         domain.TrendStable,
			OccupiedRooms: occupied,
			TotalRooms:    totalRooms,
		}
		if occupied > 0 {
			kpi.AveragePrice = int(math.Round(revenue / float64(occupied)))
		}
		if i > 0 {
			kpi.Trend = trend(kpi.AveragePrice, result[i-1].AveragePrice)
		}

		result[i] = kpi
	}

	return result
}

// occupancyRate возвращает загрузку в процентах, ограниченную [0, 100]
func occupancyRate(occupied, total int) int {
	if total == 0 {
		return 0
	}
	rate := int(math.Round(100 * float64(occupied) / float64(total)))
	if rate > domain.MaxOccupancyRate {
		// Бронирования в out_of_order комнатах могут дать больше 100%
		return domain.MaxOccupancyRate
	}
	return rate
}

func trend(current, previous int) domain.Trend {
	cur, prev := float64(current), float64(previous)
	switch {
	case cur > prev*(1+domain.TrendDeadband):
		return domain.TrendUp
	case cur < prev*(1-domain.TrendDeadband):
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}
