package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateFromString(t *testing.T) {
	d, err := NewDateFromString("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", d.String())

	_, err = NewDateFromString("01.03.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewDateFromTime_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	d := NewDateFromTime(time.Date(2025, 3, 1, 23, 30, 0, 0, loc))
	assert.True(t, d.Equal(MustDate("2025-03-01")))
}

func TestDate_Arithmetic(t *testing.T) {
	start := MustDate("2025-02-27")
	end := start.AddDays(3)

	assert.Equal(t, "2025-03-02", end.String())
	assert.Equal(t, 3, start.DaysUntil(end))
	assert.Equal(t, -3, end.DaysUntil(start))
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.False(t, start.Before(start))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Day Date `json:"day"`
	}

	data, err := json.Marshal(payload{Day: MustDate("2025-01-05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2025-01-05"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2025-01-08"}`), &p))
	assert.Equal(t, "2025-01-08", p.Day.String())

	assert.Error(t, json.Unmarshal([]byte(`{"day":"tomorrow"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-04-10", d.String())

	require.NoError(t, d.Scan([]byte("2025-04-11T00:00:00Z")))
	assert.Equal(t, "2025-04-11", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := MustDate("2025-04-10").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-04-10", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
