// Package forecast turns one day of Open-Meteo daily data into a DaySummary.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"daycast/internal/locale"
	"daycast/internal/providers/openmeteo"
	"daycast/internal/timezone"
	"daycast/internal/types"
)

// ForecastProvider fetches the daily fields for a single date at the given coordinates
type ForecastProvider interface {
	GetDailyForecast(ctx context.Context, latitude, longitude float64, date string) (*openmeteo.DailyForecastAPIResponse, error)
}

// Fetcher is safe for concurrent use; it holds no mutable state.
type Fetcher struct {
	provider ForecastProvider
	labels   *locale.Formatter
	zones    timezone.Service
	now      func() time.Time
}

type Option func(*Fetcher)

// WithClock replaces time.Now. The returned time's location is the
// calendar "today" is computed in, unless WithLocationAnchor is set.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLocationAnchor computes "today" in the timezone of the queried
// coordinates instead of the process-local timezone.
func WithLocationAnchor(zones timezone.Service) Option {
	return func(f *Fetcher) {
		f.zones = zones
	}
}

func NewFetcher(provider ForecastProvider, labels *locale.Formatter, opts ...Option) *Fetcher {
	if labels == nil {
		labels = locale.MustNew(locale.Default)
	}
	f := &Fetcher{
		provider: provider,
		labels:   labels,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithLabels returns a copy of f that renders labels with the given formatter.
func (f *Fetcher) WithLabels(labels *locale.Formatter) *Fetcher {
	clone := *f
	if labels != nil {
		clone.labels = labels
	}
	return &clone
}

// FetchDay returns the summary for the day dayOffset days from today
// (0 = today, 1 = tomorrow, ...) at coords, or at types.DefaultCoords when
// coords is nil. It makes exactly one upstream request, and none when the
// arguments are invalid.
func (f *Fetcher) FetchDay(ctx context.Context, dayOffset float64, coords *types.Coords) (*types.DaySummary, error) {
	if err := validateDayOffset(dayOffset); err != nil {
		return nil, err
	}

	c := types.DefaultCoords
	if coords != nil {
		c = *coords
	}

	now, err := f.today(c)
	if err != nil {
		return nil, err
	}
	date := formatDate(targetDate(now, dayOffset))

	resp, err := f.provider.GetDailyForecast(ctx, c.Latitude, c.Longitude, date)
	if err != nil {
		if errors.Is(err, openmeteo.ErrDecode) {
			return nil, fmt.Errorf("%w: %w", ErrNoDailyData, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return f.summarize(resp)
}

func (f *Fetcher) today(c types.Coords) (time.Time, error) {
	now := f.now()
	if f.zones == nil {
		return now, nil
	}
	loc, err := timezone.Location(f.zones, c.Latitude, c.Longitude)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return now.In(loc), nil
}

func (f *Fetcher) summarize(resp *openmeteo.DailyForecastAPIResponse) (*types.DaySummary, error) {
	if resp == nil || resp.Daily == nil || len(resp.Daily.Time) == 0 {
		return nil, ErrNoDailyData
	}
	d := resp.Daily

	code, ok := first(d.WeatherCode)
	if !ok {
		return nil, fmt.Errorf("%w: missing weather_code", ErrNoDailyData)
	}
	// Temperatures are not defaulted, unlike precipitation.
	tMax, ok := first(d.Temperature2MMax)
	if !ok {
		return nil, fmt.Errorf("%w: missing temperature_2m_max", ErrNoDailyData)
	}
	tMin, ok := first(d.Temperature2MMin)
	if !ok {
		return nil, fmt.Errorf("%w: missing temperature_2m_min", ErrNoDailyData)
	}
	precip, _ := first(d.PrecipitationSum)

	iso := d.Time[0]
	label, err := f.labels.LabelISO(iso)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDailyData, err)
	}

	roundedMax, err := roundReading("temperature_2m_max", tMax)
	if err != nil {
		return nil, err
	}
	roundedMin, err := roundReading("temperature_2m_min", tMin)
	if err != nil {
		return nil, err
	}
	roundedPrecip, err := roundReading("precipitation_sum", precip)
	if err != nil {
		return nil, err
	}
	weather := types.NewWeather(code)

	return &types.DaySummary{
		DateISO:     iso,
		Label:       label,
		TMax:        roundedMax,
		TMin:        roundedMin,
		Precip:      roundedPrecip,
		Code:        weather.Code,
		Description: weather.Description,
		Timezone:    resp.Timezone,
	}, nil
}

// first returns the first entry of a daily series; absent and null entries
// report false.
func first[T any](series []*T) (T, bool) {
	var zero T
	if len(series) == 0 || series[0] == nil {
		return zero, false
	}
	return *series[0], true
}

// Readings outside this range cannot be represented as an int on any platform.
const maxReading = 1 << 31

func roundReading(field string, v float64) (int, error) {
	r := roundHalfUp(v)
	if math.IsNaN(r) || r >= maxReading || r < -maxReading {
		return 0, fmt.Errorf("%w: %s out of range: %v", ErrNoDailyData, field, v)
	}
	return int(r), nil
}

// roundHalfUp rounds to the nearest integer with halves going towards +Inf,
// so -2.5 becomes -2 and 0.49999999999999994 stays 0.
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}
