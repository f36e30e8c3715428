package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolveNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestResolveRangeDaysWindow(t *testing.T) {
	for _, days := range []int{1, 7, 30, 90, 365} {
		dr, err := ResolveRange(days, "", "", resolveNow)
		require.NoError(t, err, "days=%d", days)

		assert.Equal(t, "2024-06-15", dr.End, "end must be the resolution date")

		start, err := time.Parse("2006-01-02", dr.Start)
		require.NoError(t, err)
		end, err := time.Parse("2006-01-02", dr.End)
		require.NoError(t, err)

		span := int(end.Sub(start).Hours()/24) + 1
		assert.Equal(t, days, span, "inclusive span must equal days")
	}
}

func TestResolveRangeExplicitStartWins(t *testing.T) {
	dr, err := ResolveRange(7, "2024-01-01", "2024-01-10", resolveNow)
	require.NoError(t, err)
	assert.Equal(t, DateRange{Start: "2024-01-01", End: "2024-01-10"}, dr)
}

func TestResolveRangeStartWithDefaultEnd(t *testing.T) {
	dr, err := ResolveRange(3, "2024-06-01", "", resolveNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", dr.Start)
	assert.Equal(t, "2024-06-15", dr.End)
}

func TestResolveRangeExplicitStartIgnoresInvalidDays(t *testing.T) {
	// An explicit start wins outright, even with a nonsense day count.
	dr, err := ResolveRange(-5, "2024-01-01", "2024-01-10", resolveNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", dr.Start)
}

func TestResolveRangeExplicitEnd(t *testing.T) {
	dr, err := ResolveRange(10, "", "2024-03-20", resolveNow)
	require.NoError(t, err)
	assert.Equal(t, DateRange{Start: "2024-03-11", End: "2024-03-20"}, dr)
}

func TestResolveRangeInvalidDays(t *testing.T) {
	for _, days := range []int{0, -1, -30} {
		_, err := ResolveRange(days, "", "", resolveNow)
		assert.ErrorIs(t, err, ErrInvalidRange, "days=%d", days)
	}
}

func TestResolveRangeEndBeforeStart(t *testing.T) {
	_, err := ResolveRange(7, "2024-01-10", "2024-01-01", resolveNow)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolveRangeBadDateFormat(t *testing.T) {
	_, err := ResolveRange(7, "01/01/2024", "", resolveNow)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ResolveRange(7, "", "not-a-date", resolveNow)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
