package external

import (
	"context"
	"time"

	"weatheragent.app/internal/core/weather"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	return errors.TypeOf(err).String()
}

func recordUpstream(ctx context.Context, metrics ports.MetricsCollector, upstream string, err error) {
	if metrics != nil {
		metrics.RecordUpstreamCall(ctx, upstream, outcomeOf(err))
	}
}

// WeatherClientLoggingDecorator decorates the weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client  ports.WeatherClient
	logger  ports.Logger
	metrics ports.MetricsCollector
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for the weather client.
// metrics may be nil.
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// CurrentWeather wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) CurrentWeather(ctx context.Context, req weather.CurrentWeatherRequest) (*weather.CurrentConditions, error) {
	d.logger.Info("Current weather request started",
		ports.F("latitude", req.Location.Latitude),
		ports.F("longitude", req.Location.Longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	conditions, err := d.client.CurrentWeather(ctx, req)
	duration := time.Since(startTime)
	recordUpstream(ctx, d.metrics, "current", err)

	if err != nil {
		d.logger.Error("Current weather request failed",
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Current weather request completed",
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", conditions.Temperature),
		ports.F("temperature_unit", conditions.TemperatureUnit))

	return conditions, nil
}

// DailyForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) DailyForecast(ctx context.Context, req weather.ForecastRequest) (*weather.DailyForecastResponse, error) {
	d.logger.Info("Daily forecast request started",
		ports.F("latitude", req.Location.Latitude),
		ports.F("longitude", req.Location.Longitude),
		ports.F("forecast_days", req.ForecastDays),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.client.DailyForecast(ctx, req)
	duration := time.Since(startTime)
	recordUpstream(ctx, d.metrics, "daily", err)

	if err != nil {
		d.logger.Error("Daily forecast request failed",
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Daily forecast request completed",
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("days", len(forecast.Days)))

	return forecast, nil
}

// HourlyForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) HourlyForecast(ctx context.Context, req weather.HourlyForecastRequest) (*weather.HourlyForecastResponse, error) {
	d.logger.Info("Hourly forecast request started",
		ports.F("latitude", req.Location.Latitude),
		ports.F("longitude", req.Location.Longitude),
		ports.F("forecast_hours", req.ForecastHours),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.client.HourlyForecast(ctx, req)
	duration := time.Since(startTime)
	recordUpstream(ctx, d.metrics, "hourly", err)

	if err != nil {
		d.logger.Error("Hourly forecast request failed",
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Hourly forecast request completed",
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("hours", len(forecast.Hours)))

	return forecast, nil
}

// GeocoderLoggingDecorator decorates the geocoder with structured logging
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// NewGeocoderLoggingDecorator creates a new logging decorator for the geocoder
func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger, metrics ports.MetricsCollector) ports.Geocoder {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

// ResolveLocation wraps the geocoder call with structured logging
func (d *GeocoderLoggingDecorator) ResolveLocation(ctx context.Context, query weather.LocationQuery) (weather.Coordinate, error) {
	d.logger.Info("Geocoding request started",
		ports.F("name", query.Name),
		ports.F("event", "request"))

	startTime := time.Now()
	coordinate, err := d.geocoder.ResolveLocation(ctx, query)
	duration := time.Since(startTime)
	recordUpstream(ctx, d.metrics, "geocoding", err)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("name", query.Name),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return weather.Coordinate{}, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("name", query.Name),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("latitude", coordinate.Latitude),
		ports.F("longitude", coordinate.Longitude))

	return coordinate, nil
}

// AlertsClientLoggingDecorator decorates the alerts client with structured logging
type AlertsClientLoggingDecorator struct {
	client  ports.AlertsClient
	logger  ports.Logger
	metrics ports.MetricsCollector
}

// NewAlertsClientLoggingDecorator creates a new logging decorator for the alerts client
func NewAlertsClientLoggingDecorator(client ports.AlertsClient, logger ports.Logger, metrics ports.MetricsCollector) ports.AlertsClient {
	return &AlertsClientLoggingDecorator{
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// Alerts wraps the client call with structured logging
func (d *AlertsClientLoggingDecorator) Alerts(ctx context.Context, req weather.AlertsRequest) (*weather.AlertsResponse, error) {
	d.logger.Info("Alerts request started",
		ports.F("query", req.Query),
		ports.F("event", "request"))

	startTime := time.Now()
	alerts, err := d.client.Alerts(ctx, req)
	duration := time.Since(startTime)
	recordUpstream(ctx, d.metrics, "alerts", err)

	if err != nil {
		d.logger.Error("Alerts request failed",
			ports.F("query", req.Query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("kind", errors.TypeOf(err).String()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Alerts request completed",
		ports.F("query", req.Query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("alerts", len(alerts.Alerts)))

	return alerts, nil
}
