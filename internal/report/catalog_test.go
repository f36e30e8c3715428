package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"overview", KindOverview},
		{"pages", KindPages},
		{"sources", KindSources},
		{"countries", KindCountries},
		{"devices", KindDevices},
		{"daily", KindDaily},
		{"realtime", KindRealtime},
		{"custom", KindCustom},
		{"properties", KindProperties},
		{"  Overview  ", KindOverview},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownReport))
	assert.Contains(t, err.Error(), "bogus")
}

func TestSpecForDeterminism(t *testing.T) {
	first, err := SpecFor(KindOverview)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := SpecFor(KindOverview)
		require.NoError(t, err)
		assert.Equal(t, first.Metrics, again.Metrics)
		assert.Equal(t, first.Dimensions, again.Dimensions)
		assert.Equal(t, first.DefaultLimit, again.DefaultLimit)
	}
}

func TestSpecForShapes(t *testing.T) {
	tests := []struct {
		kind       Kind
		metrics    int
		dimensions int
		dateRange  bool
	}{
		{KindOverview, 7, 0, true},
		{KindPages, 3, 2, true},
		{KindSources, 4, 2, true},
		{KindCountries, 3, 1, true},
		{KindDevices, 3, 1, true},
		{KindDaily, 3, 1, true},
		{KindRealtime, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			spec, err := SpecFor(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, spec.Kind)
			assert.Len(t, spec.Metrics, tt.metrics)
			assert.Len(t, spec.Dimensions, tt.dimensions)
			assert.Equal(t, tt.dateRange, spec.HasDateRange)
			assert.Positive(t, spec.DefaultLimit)
		})
	}
}

func TestSpecForNoFixedForm(t *testing.T) {
	for _, kind := range []Kind{KindCustom, KindProperties} {
		_, err := SpecFor(kind)
		assert.ErrorIs(t, err, ErrUnknownReport, "kind %s", kind)
	}
}

func TestDailyOrdersByDateAscending(t *testing.T) {
	spec, err := SpecFor(KindDaily)
	require.NoError(t, err)
	assert.Equal(t, "date", spec.OrderBy.Dimension)
	assert.False(t, spec.OrderBy.Desc)
}

func TestCustomSpec(t *testing.T) {
	spec, err := CustomSpec("sessions,totalUsers", "city")
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions", "totalUsers"}, spec.Metrics)
	assert.Equal(t, []string{"city"}, spec.Dimensions)
	assert.True(t, spec.HasDateRange)
}

func TestCustomSpecTrimsWhitespace(t *testing.T) {
	spec, err := CustomSpec(" sessions , totalUsers ,", " city , country ")
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions", "totalUsers"}, spec.Metrics)
	assert.Equal(t, []string{"city", "country"}, spec.Dimensions)
}

func TestCustomSpecRequiresMetrics(t *testing.T) {
	for _, metrics := range []string{"", "  ", ",,"} {
		_, err := CustomSpec(metrics, "city")
		assert.Error(t, err, "metrics %q", metrics)
	}
}

func TestKindsCoversCatalog(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 9)
	for _, k := range kinds {
		parsed, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
