package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=51.5072&longitude=-0.1276&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum&timezone=auto&start_date=2024-06-02&end_date=2024-06-02
const (
	BaseForecastURL = "https://api.open-meteo.com/v1/forecast"

	defaultTimeout = 10 * time.Second
)

var (
	ErrUnexpectedStatus = errors.New("open-meteo returned unexpected status")
	ErrDecode           = errors.New("failed to decode open-meteo response")
)

var dailyVars = []string{
	"weather_code",
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
}

// HTTPClient is the subset of *http.Client used by ForecastClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type ForecastClient struct {
	httpClient HTTPClient
	baseURL    string
}

type Option func(*ForecastClient)

// WithBaseURL points the client at another forecast endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *ForecastClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *ForecastClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewForecastClient(opts ...Option) *ForecastClient {
	c := &ForecastClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseForecastURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDailyForecast fetches the daily summary fields for a single date (YYYY-MM-DD)
// at the given coordinates. The timezone is resolved by the API from the coordinates.
func (c *ForecastClient) GetDailyForecast(ctx context.Context, latitude, longitude float64, date string) (*DailyForecastAPIResponse, error) {
	u, err := c.dailyURL(latitude, longitude, date)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp DailyForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &apiResp, nil
}

func (c *ForecastClient) dailyURL(latitude, longitude float64, date string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("start_date", date)
	q.Set("end_date", date)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
