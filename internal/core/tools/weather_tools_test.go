package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatheragent.app/internal/core/weather"
	"weatheragent.app/internal/mocks"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

type weatherToolsFixture struct {
	geocoder *mocks.Geocoder
	client   *mocks.WeatherClient
	alerts   *mocks.AlertsClient
	registry *Registry
}

func newWeatherToolsFixture(t *testing.T, opts WeatherToolsOptions) *weatherToolsFixture {
	t.Helper()
	f := &weatherToolsFixture{
		geocoder: mocks.NewGeocoder(t),
		client:   mocks.NewWeatherClient(t),
		alerts:   mocks.NewAlertsClient(t),
		registry: NewRegistry(mocks.NewPermissiveLogger(t), nil),
	}
	err := RegisterWeatherTools(f.registry, WeatherToolsDependencies{
		Geocoder:      f.geocoder,
		WeatherClient: f.client,
		AlertsClient:  f.alerts,
	}, opts)
	require.NoError(t, err)
	return f
}

func toolNames(registry *Registry) []string {
	var names []string
	for _, tool := range registry.Tools() {
		names = append(names, tool.Name)
	}
	return names
}

func TestNewWeatherTools_DefaultSet(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{OpaqueTools: []string{WeatherForecastTool}})

	assert.Equal(t, []string{ResolveLocationTool, CurrentWeatherTool, WeatherForecastTool}, toolNames(f.registry))

	forecast, ok := f.registry.Lookup(WeatherForecastTool)
	require.True(t, ok)
	assert.Equal(t, FailureOpaque, forecast.FailureMode)

	current, ok := f.registry.Lookup(CurrentWeatherTool)
	require.True(t, ok)
	assert.Equal(t, FailureSurfaced, current.FailureMode)
}

func TestNewWeatherTools_ExtendedSet(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{Extended: true})

	assert.Equal(t, []string{
		ResolveLocationTool, CurrentWeatherTool, WeatherForecastTool, HourlyForecastTool, WeatherAlertsTool,
	}, toolNames(f.registry))
}

func TestNewWeatherTools_MissingDependencies(t *testing.T) {
	_, err := NewWeatherTools(WeatherToolsDependencies{}, WeatherToolsOptions{})
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewWeatherTools(WeatherToolsDependencies{
		Geocoder:      mocks.NewGeocoder(t),
		WeatherClient: mocks.NewWeatherClient(t),
	}, WeatherToolsOptions{Extended: true})
	assert.True(t, errors.IsConfigurationError(err))
}

func TestNewWeatherTools_UnknownOpaqueTool(t *testing.T) {
	deps := WeatherToolsDependencies{
		Geocoder:      mocks.NewGeocoder(t),
		WeatherClient: mocks.NewWeatherClient(t),
	}

	_, err := NewWeatherTools(deps, WeatherToolsOptions{OpaqueTools: []string{"get_weather_forcast"}})
	require.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "get_weather_forcast")

	// extended tool names are known even when the extended set is off
	tools, err := NewWeatherTools(deps, WeatherToolsOptions{OpaqueTools: []string{HourlyForecastTool, WeatherForecastTool}})
	require.NoError(t, err)
	require.Len(t, tools, 3)
	assert.Equal(t, FailureOpaque, tools[2].FailureMode)
}

func TestWeatherTools_CurrentWeather(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{})

	expected := weather.CurrentWeatherRequest{
		Location:       weather.Coordinate{Latitude: 33.59, Longitude: -7.61},
		UnitPreference: weather.UnitPreference{Temperature: weather.Fahrenheit},
	}
	f.client.EXPECT().CurrentWeather(mock.Anything, expected).Return(&weather.CurrentConditions{
		Temperature: 71.2, TemperatureUnit: "°F",
		WindSpeed: 12, WindSpeedUnit: "km/h",
		RelativeHumidity: 64, RelativeHumidityUnit: "%",
		Visibility: 24140, VisibilityUnit: "m",
	}, nil).Once()

	result, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID:        "call_1",
		Name:      CurrentWeatherTool,
		Arguments: `{"location": {"latitude": 33.59, "longitude": -7.61}, "temperature_unit": "fahrenheit"}`,
	})

	require.NoError(t, err)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `"temperature_unit":"°F"`)
}

func TestWeatherTools_ForecastOutOfRangeNeverReachesClient(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{OpaqueTools: []string{WeatherForecastTool}})

	_, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID:        "call_1",
		Name:      WeatherForecastTool,
		Arguments: `{"location": {"latitude": 33.59, "longitude": -7.61}, "forecast_days": 1}`,
	})

	// the model broke the declared bounds, the user did not
	assert.True(t, errors.IsModelBehaviorError(err))
	assert.False(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "forecast_days")
}

func TestWeatherTools_OpaqueForecastPropagatesUpstreamStatus(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{OpaqueTools: []string{WeatherForecastTool}})

	f.client.EXPECT().DailyForecast(mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamHTTPError(503, "forecast API returned 503")).Once()

	_, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID:        "call_1",
		Name:      WeatherForecastTool,
		Arguments: `{"location": {"latitude": 33.59, "longitude": -7.61}, "forecast_days": 2}`,
	})

	status, ok := errors.UpstreamStatus(err)
	require.True(t, ok)
	assert.Equal(t, 503, status)
}

func TestWeatherTools_SurfacedNotFound(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{})

	f.geocoder.EXPECT().ResolveLocation(mock.Anything, weather.LocationQuery{Name: "Atlantis"}).
		Return(weather.Coordinate{}, errors.NewNotFoundError("no location found for Atlantis")).Once()

	result, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID:        "call_2",
		Name:      ResolveLocationTool,
		Arguments: `{"name": "Atlantis"}`,
	})

	require.NoError(t, err)
	assert.True(t, errors.IsNotFoundError(result.Err))
	assert.Contains(t, result.Output, "no location found for Atlantis")
}

func TestWeatherTools_HourlyAndAlerts(t *testing.T) {
	f := newWeatherToolsFixture(t, WeatherToolsOptions{Extended: true})

	f.client.EXPECT().HourlyForecast(mock.Anything, weather.HourlyForecastRequest{
		Location: weather.Coordinate{Latitude: 1, Longitude: 2},
	}).Return(&weather.HourlyForecastResponse{Hours: []weather.HourlyForecastEntry{{Time: "2025-06-01T00:00", HourIndex: 0}}}, nil).Once()
	f.alerts.EXPECT().Alerts(mock.Anything, weather.AlertsRequest{Query: "Miami"}).
		Return(&weather.AlertsResponse{Location: "Miami", Alerts: []weather.Alert{}}, nil).Once()

	hourly, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID: "h", Name: HourlyForecastTool, Arguments: `{"location": {"latitude": 1, "longitude": 2}}`,
	})
	require.NoError(t, err)
	assert.Contains(t, hourly.Output, `"hour_index":0`)

	alerts, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID: "a", Name: WeatherAlertsTool, Arguments: `{"query": "Miami"}`,
	})
	require.NoError(t, err)
	assert.Contains(t, alerts.Output, `"location":"Miami"`)

	tooMany, err := f.registry.Call(context.Background(), ports.ToolCall{
		ID: "h2", Name: HourlyForecastTool, Arguments: `{"location": {"latitude": 1, "longitude": 2}, "forecast_hours": 169}`,
	})
	require.NoError(t, err)
	assert.True(t, errors.IsValidationError(tooMany.Err))
}
