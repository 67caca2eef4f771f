package rack

import (
	"github.com/m04kA/SMC-RackService/internal/domain"
	"github.com/m04kA/SMC-RackService/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Бронирование, которое заканчивается в день заезда другого, НЕ пересекается с ним
func Overlaps(aStart, aEnd, bStart, bEnd types.Date) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OccupiesDate проверяет, что бронирование занимает ночь date: start <= date < end
func OccupiesDate(r *domain.Reservation, date types.Date) bool {
	return !date.Before(r.Start) && date.Before(r.End)
}

// reservationsOverlap проверяет пересечение двух бронирований
func reservationsOverlap(a, b *domain.Reservation) bool {
	return Overlaps(a.Start, a.End, b.Start, b.End)
}

// DaysBetween возвращает упорядоченную ось дат [from, to] включительно
// Если to раньше from, возвращает пустой список
func DaysBetween(from, to types.Date) []types.Date {
	if to.Before(from) {
		return []types.Date{}
	}

	days := make([]types.Date, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
