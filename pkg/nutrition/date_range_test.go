package nutrition

import (
	"FitnessPro-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRangeSingleDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.Local)

	dateRange, err := ResolveDateRange("2025-06-10", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), dateRange.From)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 999999999, time.Local), dateRange.To)
}

func TestResolveDateRangeExplicitRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.Local)

	dateRange, err := ResolveDateRange("", "2025-06-01", "2025-06-07", now)
	require.NoError(t, err)

	// Boundaries are taken as provided, no day normalization.
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), dateRange.From)
	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.Local), dateRange.To)
}

func TestResolveDateRangeRFC3339Instants(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	dateRange, err := ResolveDateRange("", "2025-06-01T08:30:00Z", "2025-06-01T20:00:00Z", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC), dateRange.From.UTC())
	assert.Equal(t, time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC), dateRange.To.UTC())
}

func TestResolveDateRangeDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.Local)

	dateRange, err := ResolveDateRange("", "", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), dateRange.From)
	assert.True(t, dateRange.To.After(now))
	assert.Equal(t, 15, dateRange.To.Day())
}

func TestResolveDateRangeRejectsHalfRange(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "only start", startDate: "2025-06-01", endDate: ""},
		{name: "only end", startDate: "", endDate: "2025-06-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDateRange("", tt.startDate, tt.endDate, now)
			assert.ErrorIs(t, err, domain.ErrIncompleteDateRange)
		})
	}
}

func TestResolveDateRangeInvalidInput(t *testing.T) {
	now := time.Now()

	_, err := ResolveDateRange("not-a-date", "", "", now)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = ResolveDateRange("", "not-a-date", "2025-06-07", now)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = ResolveDateRange("", "2025-06-01", "not-a-date", now)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
