package rack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RackService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	d := types.MustDate

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"same-day turnover", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-08", false},
		{"partial overlap", "2025-03-01", "2025-03-04", "2025-03-02", "2025-03-05", true},
		{"contained", "2025-03-01", "2025-03-10", "2025-03-03", "2025-03-04", true},
		{"identical", "2025-03-01", "2025-03-03", "2025-03-01", "2025-03-03", true},
		{"disjoint", "2025-03-01", "2025-03-02", "2025-03-05", "2025-03-06", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(d(tt.aStart), d(tt.aEnd), d(tt.bStart), d(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, got, Overlaps(d(tt.bStart), d(tt.bEnd), d(tt.aStart), d(tt.aEnd)))
		})
	}
}

func TestOccupiesDate(t *testing.T) {
	r := reservation("A", "R1", "2025-03-01", "2025-03-03", 100)

	assert.False(t, OccupiesDate(r, types.MustDate("2025-02-28")))
	assert.True(t, OccupiesDate(r, types.MustDate("2025-03-01")))
	assert.True(t, OccupiesDate(r, types.MustDate("2025-03-02")))
	assert.False(t, OccupiesDate(r, types.MustDate("2025-03-03")), "departure day is not occupied")
}

func TestDaysBetween(t *testing.T) {
	days := DaysBetween(types.MustDate("2025-02-27"), types.MustDate("2025-03-02"))

	got := make([]string, len(days))
	for i, d := range days {
		got[i] = d.String()
	}
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, got)

	assert.Empty(t, DaysBetween(types.MustDate("2025-03-02"), types.MustDate("2025-03-01")))
}
