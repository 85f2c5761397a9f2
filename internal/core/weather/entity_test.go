package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatheragent.app/pkg/errors"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
		errMsg    string
	}{
		{name: "Casablanca", latitude: 33.5731, longitude: -7.5898},
		{name: "NorthPole", latitude: 90, longitude: 0},
		{name: "SouthPole", latitude: -90, longitude: 180},
		{name: "DateLineWest", latitude: 0, longitude: -180},
		{name: "LatitudeTooHigh", latitude: 200, longitude: 0, wantErr: true, errMsg: "latitude"},
		{name: "LatitudeTooLow", latitude: -90.0001, longitude: 0, wantErr: true, errMsg: "latitude"},
		{name: "LongitudeTooHigh", latitude: 0, longitude: 180.5, wantErr: true, errMsg: "longitude"},
		{name: "LongitudeTooLow", latitude: 0, longitude: -181, wantErr: true, errMsg: "longitude"},
		{name: "LatitudeNaN", latitude: math.NaN(), longitude: 0, wantErr: true, errMsg: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Equal(t, Coordinate{}, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, c.Latitude)
			assert.Equal(t, tt.longitude, c.Longitude)
		})
	}
}

func TestUnitPreference_WithDefaults(t *testing.T) {
	assert.Equal(t, UnitPreference{Temperature: Celsius, WindSpeed: KilometersPerHour}, UnitPreference{}.WithDefaults())

	custom := UnitPreference{Temperature: Fahrenheit, WindSpeed: Knots}
	assert.Equal(t, custom, custom.WithDefaults())
}

func TestCurrentWeatherRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CurrentWeatherRequest
		wantErr bool
	}{
		{
			name:    "DefaultUnits",
			request: CurrentWeatherRequest{Location: Coordinate{Latitude: 48.85, Longitude: 2.35}},
		},
		{
			name: "ExplicitUnits",
			request: CurrentWeatherRequest{
				Location:       Coordinate{Latitude: 48.85, Longitude: 2.35},
				UnitPreference: UnitPreference{Temperature: Fahrenheit, WindSpeed: MilesPerHour},
			},
		},
		{
			name: "UnknownTemperatureUnit",
			request: CurrentWeatherRequest{
				Location:       Coordinate{Latitude: 48.85, Longitude: 2.35},
				UnitPreference: UnitPreference{Temperature: "kelvin"},
			},
			wantErr: true,
		},
		{
			name: "UnknownWindUnit",
			request: CurrentWeatherRequest{
				Location:       Coordinate{Latitude: 48.85, Longitude: 2.35},
				UnitPreference: UnitPreference{WindSpeed: "mph "},
			},
			wantErr: true,
		},
		{
			name:    "OutOfRangeLocation",
			request: CurrentWeatherRequest{Location: Coordinate{Latitude: 200}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestForecastRequest_Validate_DayBounds(t *testing.T) {
	location := Coordinate{Latitude: 50.45, Longitude: 30.52}

	for days := -1; days <= 20; days++ {
		err := ForecastRequest{Location: location, ForecastDays: days}.Validate()
		if days >= MinForecastDays && days <= MaxForecastDays {
			assert.NoError(t, err, "days=%d", days)
		} else {
			assert.True(t, errors.IsValidationError(err), "days=%d", days)
		}
	}
}

func TestHourlyForecastRequest(t *testing.T) {
	location := Coordinate{Latitude: 50.45, Longitude: 30.52}

	req := HourlyForecastRequest{Location: location}
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultForecastHours, req.WithDefaults().ForecastHours)
	assert.Equal(t, Celsius, req.WithDefaults().Temperature)

	assert.True(t, errors.IsValidationError(HourlyForecastRequest{Location: location, ForecastHours: 169}.Validate()))
	assert.True(t, errors.IsValidationError(HourlyForecastRequest{Location: location, ForecastHours: -3}.Validate()))
}

func TestLocationQuery_Validate(t *testing.T) {
	assert.NoError(t, LocationQuery{Name: "Casablanca"}.Validate())
	assert.True(t, errors.IsValidationError(LocationQuery{Name: ""}.Validate()))
	assert.True(t, errors.IsValidationError(LocationQuery{Name: "   "}.Validate()))
}

func TestAlertsRequest_Validate(t *testing.T) {
	assert.NoError(t, AlertsRequest{Query: "Miami"}.Validate())
	assert.True(t, errors.IsValidationError(AlertsRequest{Query: " "}.Validate()))
}
