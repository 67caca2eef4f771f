package get_rack_kpis

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RackService/pkg/types"
)

// validateRequest валидирует запрос и возвращает границы периода
func validateRequest(req *Request, maxDays int) (types.Date, types.Date, error) {
	if strings.TrimSpace(req.HotelID) == "" {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}

	from, err := types.NewDateFromString(req.From)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: from: %v", ErrInvalidDateRange, err)
	}
	to, err := types.NewDateFromString(req.To)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: to: %v", ErrInvalidDateRange, err)
	}

	if from.After(to) {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, from, to)
	}

	if days := from.DaysUntil(to) + 1; maxDays > 0 && days > maxDays {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, maxDays)
	}

	return from, to, nil
}
