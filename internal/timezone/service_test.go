package timezone

import (
	"errors"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{name: "London, UK", latitude: 51.5072, longitude: -0.1276, want: "Europe/London"},
		{name: "New York City", latitude: 40.7128, longitude: -74.0060, want: "America/New_York"},
		{name: "Aspen, Colorado", latitude: 39.11539, longitude: -107.65840, want: "America/Denver"},
		{name: "Tokyo, Japan", latitude: 35.6762, longitude: 139.6503, want: "Asia/Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	require.NoError(t, err)
	b, err := NewService()
	require.NoError(t, err)

	assert.Same(t, a, b)
}

type stubService struct {
	name string
	err  error
}

func (s stubService) GetTimezone(_, _ float64) (string, error) {
	return s.name, s.err
}

func TestLocation(t *testing.T) {
	t.Run("resolves a known zone", func(t *testing.T) {
		loc, err := Location(stubService{name: "Asia/Tokyo"}, 35.6762, 139.6503)

		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", loc.String())
	})

	t.Run("lookup failure", func(t *testing.T) {
		loc, err := Location(stubService{err: ErrUnknownTimezone}, 0, 0)

		require.Error(t, err)
		assert.Nil(t, loc)
		assert.True(t, errors.Is(err, ErrUnknownTimezone))
	})

	t.Run("unknown zone name", func(t *testing.T) {
		loc, err := Location(stubService{name: "Mars/Olympus_Mons"}, 0, 0)

		require.Error(t, err)
		assert.Nil(t, loc)
		assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
	})
}
