package forecast

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetDate(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name      string
		now       time.Time
		dayOffset float64
		want      string
	}{
		{name: "today", now: time.Date(2024, 6, 1, 9, 0, 0, 0, london), dayOffset: 0, want: "2024-06-01"},
		{name: "tomorrow", now: time.Date(2024, 6, 1, 9, 0, 0, 0, london), dayOffset: 1, want: "2024-06-02"},
		{name: "just after midnight", now: time.Date(2024, 6, 1, 0, 0, 1, 0, london), dayOffset: 1, want: "2024-06-02"},
		{name: "just before midnight", now: time.Date(2024, 6, 1, 23, 59, 59, 0, london), dayOffset: 1, want: "2024-06-02"},
		{name: "month rollover", now: time.Date(2024, 1, 31, 12, 0, 0, 0, london), dayOffset: 1, want: "2024-02-01"},
		{name: "leap year", now: time.Date(2024, 2, 28, 18, 0, 0, 0, london), dayOffset: 1, want: "2024-02-29"},
		{name: "year rollover", now: time.Date(2024, 12, 31, 23, 0, 0, 0, newYork), dayOffset: 1, want: "2025-01-01"},
		{name: "spring forward late evening", now: time.Date(2024, 3, 30, 23, 30, 0, 0, london), dayOffset: 1, want: "2024-03-31"},
		{name: "across spring forward", now: time.Date(2024, 3, 30, 23, 30, 0, 0, london), dayOffset: 2, want: "2024-04-01"},
		{name: "fall back just after midnight", now: time.Date(2024, 10, 27, 0, 15, 0, 0, london), dayOffset: 0, want: "2024-10-27"},
		{name: "across fall back", now: time.Date(2024, 10, 26, 0, 15, 0, 0, london), dayOffset: 2, want: "2024-10-28"},
		{name: "new york spring forward", now: time.Date(2024, 3, 9, 23, 59, 0, 0, newYork), dayOffset: 1, want: "2024-03-10"},
		{name: "fractional offset truncates", now: time.Date(2024, 6, 1, 9, 0, 0, 0, london), dayOffset: 1.9, want: "2024-06-02"},
		{name: "two weeks", now: time.Date(2024, 6, 1, 9, 0, 0, 0, london), dayOffset: 14, want: "2024-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targetDate(tt.now, tt.dayOffset)

			assert.Equal(t, tt.want, formatDate(got))
			assert.Equal(t, 12, got.Hour())
		})
	}
}

func TestTargetDate_EveryHourOfDSTDays(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	for _, day := range []time.Time{
		time.Date(2024, 3, 31, 0, 0, 0, 0, london),
		time.Date(2024, 10, 27, 0, 0, 0, 0, london),
	} {
		want := day.AddDate(0, 0, 1).Format(isoDateLayout)
		for minutes := 0; minutes < 24*60; minutes += 15 {
			now := day.Add(time.Duration(minutes) * time.Minute)
			if now.Day() != day.Day() {
				continue
			}
			assert.Equal(t, want, formatDate(targetDate(now, 1)), "now=%s", now)
		}
	}
}

func TestValidateDayOffset(t *testing.T) {
	tests := []struct {
		name      string
		dayOffset float64
		wantErr   bool
	}{
		{name: "zero", dayOffset: 0},
		{name: "positive", dayOffset: 7},
		{name: "fractional", dayOffset: 0.5},
		{name: "negative", dayOffset: -1, wantErr: true},
		{name: "small negative", dayOffset: -0.1, wantErr: true},
		{name: "NaN", dayOffset: math.NaN(), wantErr: true},
		{name: "positive infinity", dayOffset: math.Inf(1), wantErr: true},
		{name: "negative infinity", dayOffset: math.Inf(-1), wantErr: true},
		{name: "too large", dayOffset: 1e12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDayOffset(tt.dayOffset)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 18.4, want: 18},
		{in: 25.6, want: 26},
		{in: 14.2, want: 14},
		{in: 2.5, want: 3},
		{in: -2.5, want: -2},
		{in: -2.6, want: -3},
		{in: -0.4, want: 0},
		{in: 0, want: 0},
		{in: 0.49999999999999994, want: 0},
		{in: -0.5, want: 0},
		{in: 4503599627370497, want: 4503599627370497},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "roundHalfUp(%v)", tt.in)
	}
}

func TestRoundReading(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr bool
	}{
		{name: "typical temperature", in: 25.6, want: 26},
		{name: "just under a half", in: 0.49999999999999994, want: 0},
		{name: "negative half", in: -10.5, want: -10},
		{name: "huge value", in: 1e300, wantErr: true},
		{name: "huge negative value", in: -1e300, wantErr: true},
		{name: "positive infinity", in: math.Inf(1), wantErr: true},
		{name: "NaN", in: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roundReading("temperature_2m_max", tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoDailyData)
				assert.Contains(t, err.Error(), "temperature_2m_max")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
