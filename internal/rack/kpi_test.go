package rack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

func dates(values ...string) []types.Date {
	out := make([]types.Date, len(values))
	for i, v := range values {
		out[i] = types.MustDate(v)
	}
	return out
}

func TestComputeDailyKPIs_TwoRoomsOneGuest(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101"), room("R2", "102")}
	reservations := []*domain.Reservation{reservation("A", "R1", "2025-03-01", "2025-03-03", 100)}

	kpis := ComputeDailyKPIs(rooms, reservations, dates("2025-03-01", "2025-03-02"))

	require.Len(t, kpis, 2)
	for _, kpi := range kpis {
		assert.Equal(t, 50, kpi.OccupancyRate)
		assert.Equal(t, 100, kpi.AveragePrice)
		assert.Equal(t, domain.TrendStable, kpi.Trend)
		assert.Equal(t, 1, kpi.OccupiedRooms)
		assert.Equal(t, 2, kpi.TotalRooms)
	}
	assert.Equal(t, "2025-03-01", kpis[0].Date.String())
	assert.Equal(t, "2025-03-02", kpis[1].Date.String())
}

func TestComputeDailyKPIs_NoRooms(t *testing.T) {
	reservations := []*domain.Reservation{reservation("A", "R1", "2025-03-01", "2025-03-03", 100)}

	kpis := ComputeDailyKPIs(nil, reservations, dates("2025-03-01"))

	require.Len(t, kpis, 1)
	assert.Equal(t, 0, kpis[0].OccupancyRate)
	assert.Equal(t, 100, kpis[0].AveragePrice)
}

func TestComputeDailyKPIs_OutOfOrderExcludedFromCapacity(t *testing.T) {
	rooms := []*domain.Room{
		room("R1", "101"),
		room("R2", "102"),
		roomWithStatus("R3", "103", domain.RoomStatusOutOfOrder),
		roomWithStatus("R4", "104", domain.RoomStatusDirty),
	}
	reservations := []*domain.Reservation{reservation("A", "R1", "2025-03-01", "2025-03-02", 100)}

	kpis := ComputeDailyKPIs(rooms, reservations, dates("2025-03-01"))

	assert.Equal(t, 3, kpis[0].TotalRooms)
	assert.Equal(t, 33, kpis[0].OccupancyRate)
}

func TestComputeDailyKPIs_OccupancyNeverExceeds100(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101"), roomWithStatus("R2", "102", domain.RoomStatusOutOfOrder)}
	reservations := []*domain.Reservation{
		reservation("A", "R1", "2025-03-01", "2025-03-02", 100),
		reservation("B", "R2", "2025-03-01", "2025-03-02", 100),
	}

	kpis := ComputeDailyKPIs(rooms, reservations, dates("2025-03-01"))

	assert.Equal(t, 100, kpis[0].OccupancyRate)
}

func TestComputeDailyKPIs_IgnoresInactiveAndDepartureDay(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101"), room("R2", "102"), room("R3", "103"), room("R4", "104")}
	reservations := []*domain.Reservation{
		reservation("A", "R1", "2025-03-01", "2025-03-03", 100),
		withStatus(reservation("B", "R2", "2025-03-01", "2025-03-03", 500), domain.ReservationStatusCancelled),
		withStatus(reservation("C", "R3", "2025-03-01", "2025-03-03", 500), domain.ReservationStatusOption),
		reservation("D", "R4", "2025-02-27", "2025-03-01", 900),
	}

	kpis := ComputeDailyKPIs(rooms, reservations, dates("2025-03-01"))

	assert.Equal(t, 1, kpis[0].OccupiedRooms)
	assert.Equal(t, 25, kpis[0].OccupancyRate)
	assert.Equal(t, 100, kpis[0].AveragePrice)
}

func TestComputeDailyKPIs_AveragePriceRounding(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101"), room("R2", "102"), room("R3", "103")}
	reservations := []*domain.Reservation{
		reservation("A", "R1", "2025-03-01", "2025-03-02", 100),
		reservation("B", "R2", "2025-03-01", "2025-03-02", 101),
	}

	kpis := ComputeDailyKPIs(rooms, reservations, dates("2025-03-01", "2025-03-02"))

	assert.Equal(t, 101, kpis[0].AveragePrice, "100.5 rounds half away from zero")
	assert.Equal(t, 67, kpis[0].OccupancyRate)
	assert.Equal(t, 0, kpis[1].AveragePrice)
	assert.Equal(t, 0, kpis[1].OccupancyRate)
}

func TestComputeDailyKPIs_Trend(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101")}
	reservations := []*domain.Reservation{
		reservation("A", "R1", "2025-03-01", "2025-03-02", 100),
		reservation("B", "R1", "2025-03-02", "2025-03-03", 104), // +4%: внутри мертвой зоны
		reservation("C", "R1", "2025-03-03", "2025-03-04", 120), // +15%
		reservation("D", "R1", "2025-03-04", "2025-03-05", 100), // -17%
		reservation("E", "R1", "2025-03-05", "2025-03-06", 96),  // -4%
	}

	kpis := ComputeDailyKPIs(rooms, reservations,
		dates("2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06"))

	got := make([]domain.Trend, len(kpis))
	for i, kpi := range kpis {
		got[i] = kpi.Trend
	}
	assert.Equal(t, []domain.Trend{
		domain.TrendStable,
		domain.TrendStable,
		domain.TrendUp,
		domain.TrendDown,
		domain.TrendStable,
		domain.TrendDown,
	}, got)
}

func TestComputeDailyKPIs_FollowsInputOrderAndIsRepeatable(t *testing.T) {
	rooms := []*domain.Room{room("R1", "101"), room("R2", "102")}
	reservations := []*domain.Reservation{
		reservation("A", "R1", "2025-03-01", "2025-03-03", 100),
		reservation("B", "R2", "2025-03-02", "2025-03-03", 300),
	}
	days := dates("2025-03-02", "2025-03-01")

	first := ComputeDailyKPIs(rooms, reservations, days)
	second := ComputeDailyKPIs(rooms, reservations, days)

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-03-02", first[0].Date.String())
	assert.Equal(t, 200, first[0].AveragePrice)
	assert.Equal(t, domain.TrendStable, first[0].Trend)
	assert.Equal(t, domain.TrendDown, first[1].Trend)
}

func TestComputeDailyKPIs_EmptyDays(t *testing.T) {
	kpis := ComputeDailyKPIs([]*domain.Room{room("R1", "101")}, nil, nil)
	assert.Empty(t, kpis)
}
