package ports

import (
	"context"

	"weatheragent.app/internal/core/weather"
)

// Geocoder resolves free-text place names to coordinates
type Geocoder interface {
	ResolveLocation(ctx context.Context, query weather.LocationQuery) (weather.Coordinate, error)
}

// WeatherClient fetches conditions and forecasts from the forecast API
type WeatherClient interface {
	CurrentWeather(ctx context.Context, req weather.CurrentWeatherRequest) (*weather.CurrentConditions, error)
	DailyForecast(ctx context.Context, req weather.ForecastRequest) (*weather.DailyForecastResponse, error)
	HourlyForecast(ctx context.Context, req weather.HourlyForecastRequest) (*weather.HourlyForecastResponse, error)
}

// AlertsClient fetches active weather alerts
type AlertsClient interface {
	Alerts(ctx context.Context, req weather.AlertsRequest) (*weather.AlertsResponse, error)
}
