package main

import (
	"context"
	"errors"

	"daycast/internal/forecast"
	"daycast/internal/locale"
	"daycast/internal/metrics"
	"daycast/internal/types"

	"github.com/danielgtaylor/huma/v2"
)

// GetDaySummaryInput defines the query parameters for the day summary endpoint
type GetDaySummaryInput struct {
	Offset    float64 `query:"offset" default:"0" doc:"Days from today (0 = today, 1 = tomorrow, ...)" example:"1"`
	Latitude  float64 `query:"latitude" default:"51.5072" minimum:"-90" maximum:"90" doc:"Latitude in decimal degrees"`
	Longitude float64 `query:"longitude" default:"-0.1276" minimum:"-180" maximum:"180" doc:"Longitude in decimal degrees"`
	Locale    string  `query:"locale" doc:"BCP 47 locale for the date label; defaults to the configured locale" example:"en-GB"`
	RequestID string  `header:"X-Request-ID" doc:"Correlation ID, generated when absent"`
}

// GetDaySummaryOutput wraps the normalized day summary
type GetDaySummaryOutput struct {
	Body types.DaySummary
}

func (app *App) handleGetDaySummary(ctx context.Context, input *GetDaySummaryInput) (*GetDaySummaryOutput, error) {
	fetcher := app.fetcher
	if input.Locale != "" {
		labels, err := locale.New(input.Locale)
		if err != nil {
			app.metrics.DaysServed.WithLabelValues(metrics.OutcomeInvalidArgument).Inc()
			return nil, huma.Error400BadRequest("invalid locale", err)
		}
		fetcher = fetcher.WithLabels(labels)
	}

	coords := types.NewCoords(input.Latitude, input.Longitude)
	day, err := fetcher.FetchDay(ctx, input.Offset, &coords)
	if err != nil {
		outcome := dayOutcome(err)
		app.metrics.DaysServed.WithLabelValues(outcome).Inc()
		app.logger.ErrorContext(ctx, "failed to get day summary",
			"request_id", input.RequestID,
			"offset", input.Offset,
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"outcome", outcome,
			"error", err,
		)

		switch outcome {
		case metrics.OutcomeInvalidArgument:
			return nil, huma.Error400BadRequest(err.Error())
		case metrics.OutcomeNoData:
			return nil, huma.Error404NotFound("No daily data for selected date")
		case metrics.OutcomeNetworkError:
			return nil, huma.Error502BadGateway("Could not load weather data")
		default:
			return nil, huma.Error500InternalServerError("failed to get day summary")
		}
	}

	app.metrics.DaysServed.WithLabelValues(metrics.OutcomeOK).Inc()
	app.logger.DebugContext(ctx, "served day summary",
		"request_id", input.RequestID,
		"date", day.DateISO,
		"timezone", day.Timezone,
	)

	return &GetDaySummaryOutput{Body: *day}, nil
}

func dayOutcome(err error) string {
	switch {
	case errors.Is(err, forecast.ErrInvalidArgument):
		return metrics.OutcomeInvalidArgument
	case errors.Is(err, forecast.ErrNoDailyData):
		return metrics.OutcomeNoData
	case errors.Is(err, forecast.ErrNetwork):
		return metrics.OutcomeNetworkError
	default:
		return metrics.OutcomeInternal
	}
}
