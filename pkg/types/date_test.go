package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-20")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-20", d.String())

	_, err = ParseDate("20-01-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_DaysUntil(t *testing.T) {
	checkIn := MustParseDate("2025-01-20")
	checkOut := MustParseDate("2025-01-22")

	assert.Equal(t, 2, checkIn.DaysUntil(checkOut))
	assert.Equal(t, -2, checkOut.DaysUntil(checkIn))

	// Переход через переход на летнее время не влияет на количество суток
	assert.Equal(t, 1, MustParseDate("2025-03-30").DaysUntil(MustParseDate("2025-03-31")))
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 2025-01-01 20:00 UTC == 2025-01-02 03:00 UTC+7
	moment := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "2025-01-02", DateOf(moment).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		CheckIn Date `json:"checkIn"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"2025-01-05"}`), &p))
	assert.True(t, p.CheckIn.Equal(NewDate(2025, time.January, 5)))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2025-01-05"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"checkIn":"tomorrow"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-05", d.String())

	require.NoError(t, d.Scan([]byte("2025-02-01")))
	assert.Equal(t, "2025-02-01", d.String())

	assert.Error(t, d.Scan(42))
}
