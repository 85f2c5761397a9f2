package tools

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"weatheragent.app/internal/core/weather"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// Names of the weather tools as shown to the model
const (
	ResolveLocationTool = "resolve_location"
	CurrentWeatherTool  = "get_current_weather"
	WeatherForecastTool = "get_weather_forecast"
	HourlyForecastTool  = "get_hourly_forecast"
	WeatherAlertsTool   = "get_weather_alerts"
)

// WeatherToolNames lists every weather tool, extended ones included
var WeatherToolNames = []string{ResolveLocationTool, CurrentWeatherTool, WeatherForecastTool, HourlyForecastTool, WeatherAlertsTool}

// WeatherToolsDependencies holds the upstream clients the tools call into
type WeatherToolsDependencies struct {
	Geocoder      ports.Geocoder
	WeatherClient ports.WeatherClient
	AlertsClient  ports.AlertsClient
}

// WeatherToolsOptions selects which tools are built and how they fail
type WeatherToolsOptions struct {
	Extended    bool
	OpaqueTools []string
}

// NewWeatherTools builds the weather tool set.
// The default set is resolve_location, get_current_weather and get_weather_forecast.
func NewWeatherTools(deps WeatherToolsDependencies, opts WeatherToolsOptions) ([]*Tool, error) {
	if deps.Geocoder == nil || deps.WeatherClient == nil {
		return nil, errors.NewConfigurationError("weather tools need a geocoder and a weather client", nil)
	}
	if opts.Extended && deps.AlertsClient == nil {
		return nil, errors.NewConfigurationError("extended weather tools need an alerts client", nil)
	}

	builders := []func() (*Tool, error){
		func() (*Tool, error) {
			return NewFunctionTool(ResolveLocationTool,
				"Resolve a place name to its latitude and longitude.",
				func(ctx context.Context, args weather.LocationQuery) (weather.Coordinate, error) {
					return deps.Geocoder.ResolveLocation(ctx, args)
				})
		},
		func() (*Tool, error) {
			return NewFunctionTool(CurrentWeatherTool,
				"Get weather informations from coordinates by the requested units.",
				func(ctx context.Context, args weather.CurrentWeatherRequest) (*weather.CurrentConditions, error) {
					return deps.WeatherClient.CurrentWeather(ctx, args)
				})
		},
		func() (*Tool, error) {
			return NewFunctionTool(WeatherForecastTool,
				"Get the daily weather forecast for a coordinate over 2 to 16 days by the requested units.",
				func(ctx context.Context, args weather.ForecastRequest) (*weather.DailyForecastResponse, error) {
					return deps.WeatherClient.DailyForecast(ctx, args)
				})
		},
	}

	if opts.Extended {
		builders = append(builders,
			func() (*Tool, error) {
				return NewFunctionTool(HourlyForecastTool,
					"Get the hour by hour weather forecast for a coordinate over the next 1 to 168 hours.",
					func(ctx context.Context, args weather.HourlyForecastRequest) (*weather.HourlyForecastResponse, error) {
						return deps.WeatherClient.HourlyForecast(ctx, args)
					})
			},
			func() (*Tool, error) {
				return NewFunctionTool(WeatherAlertsTool,
					"Get active weather alerts for a city name, postcode or coordinate pair.",
					func(ctx context.Context, args weather.AlertsRequest) (*weather.AlertsResponse, error) {
						return deps.AlertsClient.Alerts(ctx, args)
					})
			},
		)
	}

	opaque := make(map[string]bool, len(opts.OpaqueTools))
	for _, name := range opts.OpaqueTools {
		if !slices.Contains(WeatherToolNames, name) {
			return nil, errors.NewConfigurationError(fmt.Sprintf("opaque tool %q is not a weather tool (known: %s)", name, strings.Join(WeatherToolNames, ", ")), nil)
		}
		opaque[name] = true
	}

	tools := make([]*Tool, 0, len(builders))
	for _, build := range builders {
		tool, err := build()
		if err != nil {
			return nil, err
		}
		if opaque[tool.Name] {
			tool.WithFailureMode(FailureOpaque)
		}
		tools = append(tools, tool)
	}

	return tools, nil
}

// RegisterWeatherTools builds the weather tool set into the registry
func RegisterWeatherTools(registry *Registry, deps WeatherToolsDependencies, opts WeatherToolsOptions) error {
	tools, err := NewWeatherTools(deps, opts)
	if err != nil {
		return err
	}
	for _, tool := range tools {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
