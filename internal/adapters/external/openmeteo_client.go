package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatheragent.app/internal/core/weather"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

const openMeteoUpstream = "open-meteo forecast"

var (
	currentFields = []string{"temperature_2m", "wind_speed_10m", "relative_humidity_2m", "visibility"}

	dailyFields = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
		"wind_speed_10m_max",
		"precipitation_hours",
		"precipitation_sum",
		"wind_gusts_10m_max",
		"wind_direction_10m_dominant",
	}

	hourlyFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"rain",
		"visibility",
		"wind_speed_10m",
		"wind_direction_10m",
		"precipitation_probability",
		"showers",
		"snowfall",
		"cloud_cover",
	}
)

// OpenMeteoClientAdapter implements the WeatherClient port against the Open-Meteo forecast API
type OpenMeteoClientAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoClientParams holds parameters for creating the Open-Meteo client
type OpenMeteoClientParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// NewOpenMeteoClientAdapter creates a new Open-Meteo client adapter
func NewOpenMeteoClientAdapter(params OpenMeteoClientParams) ports.WeatherClient {
	return &OpenMeteoClientAdapter{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  newHTTPClient(params.Client, params.Timeout),
		logger:  params.Logger,
	}
}

type openMeteoCurrentResponse struct {
	Current *struct {
		Temperature      *float64 `json:"temperature_2m"`
		WindSpeed        *float64 `json:"wind_speed_10m"`
		RelativeHumidity *float64 `json:"relative_humidity_2m"`
		Visibility       *float64 `json:"visibility"`
	} `json:"current"`
	CurrentUnits map[string]string `json:"current_units"`
}

type openMeteoSeriesResponse struct {
	Daily       map[string]json.RawMessage `json:"daily"`
	DailyUnits  map[string]string          `json:"daily_units"`
	Hourly      map[string]json.RawMessage `json:"hourly"`
	HourlyUnits map[string]string          `json:"hourly_units"`
}

// CurrentWeather retrieves the four current-condition values with their reported units
func (c *OpenMeteoClientAdapter) CurrentWeather(ctx context.Context, req weather.CurrentWeatherRequest) (*weather.CurrentConditions, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := c.baseQuery(req.Location, req.UnitPreference)
	query.Set("current", strings.Join(currentFields, ","))

	var resp openMeteoCurrentResponse
	if err := getJSON(ctx, c.client, c.logger, openMeteoUpstream, c.endpoint(), query, &resp); err != nil {
		return nil, err
	}

	if resp.Current == nil {
		return nil, errors.NewMalformedResponseError("response has no current block", nil)
	}
	if resp.CurrentUnits == nil {
		return nil, errors.NewMalformedResponseError("response has no current_units block", nil)
	}

	values := map[string]*float64{
		"temperature_2m":       resp.Current.Temperature,
		"wind_speed_10m":       resp.Current.WindSpeed,
		"relative_humidity_2m": resp.Current.RelativeHumidity,
		"visibility":           resp.Current.Visibility,
	}
	for _, field := range currentFields {
		if values[field] == nil {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("current.%s is missing", field), nil)
		}
	}

	units, err := pickUnits("current_units", resp.CurrentUnits, currentFields...)
	if err != nil {
		return nil, err
	}

	return &weather.CurrentConditions{
		Temperature:          *resp.Current.Temperature,
		WindSpeed:            *resp.Current.WindSpeed,
		RelativeHumidity:     *resp.Current.RelativeHumidity,
		Visibility:           *resp.Current.Visibility,
		TemperatureUnit:      units["temperature_2m"],
		WindSpeedUnit:        units["wind_speed_10m"],
		RelativeHumidityUnit: units["relative_humidity_2m"],
		VisibilityUnit:       units["visibility"],
	}, nil
}

// DailyForecast retrieves one entry per day upstream returned, in upstream order
func (c *OpenMeteoClientAdapter) DailyForecast(ctx context.Context, req weather.ForecastRequest) (*weather.DailyForecastResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := c.baseQuery(req.Location, req.UnitPreference)
	query.Set("forecast_days", strconv.Itoa(req.ForecastDays))
	query.Set("daily", strings.Join(dailyFields, ","))

	var resp openMeteoSeriesResponse
	if err := getJSON(ctx, c.client, c.logger, openMeteoUpstream, c.endpoint(), query, &resp); err != nil {
		return nil, err
	}

	series, err := decodeSeries("daily", resp.Daily, dailyFields)
	if err != nil {
		return nil, err
	}
	units, err := pickUnits("daily_units", resp.DailyUnits, append([]string{"time"}, dailyFields...)...)
	if err != nil {
		return nil, err
	}

	days := make([]weather.DailyForecastEntry, 0, len(series.times))
	for i, date := range series.times {
		days = append(days, weather.DailyForecastEntry{
			Date:                        date,
			DayIndex:                    i,
			TemperatureMax:              series.at("temperature_2m_max", i),
			TemperatureMin:              series.at("temperature_2m_min", i),
			PrecipitationProbabilityMax: series.at("precipitation_probability_max", i),
			WindSpeedMax:                series.at("wind_speed_10m_max", i),
			PrecipitationHours:          series.at("precipitation_hours", i),
			PrecipitationSum:            series.at("precipitation_sum", i),
			WindGustsMax:                series.at("wind_gusts_10m_max", i),
			WindDirectionDominant:       series.at("wind_direction_10m_dominant", i),
		})
	}

	return &weather.DailyForecastResponse{
		Units: weather.DailyForecastUnits{
			Time:                        units["time"],
			TemperatureMax:              units["temperature_2m_max"],
			TemperatureMin:              units["temperature_2m_min"],
			PrecipitationProbabilityMax: units["precipitation_probability_max"],
			WindSpeedMax:                units["wind_speed_10m_max"],
			PrecipitationHours:          units["precipitation_hours"],
			PrecipitationSum:            units["precipitation_sum"],
			WindGustsMax:                units["wind_gusts_10m_max"],
			WindDirectionDominant:       units["wind_direction_10m_dominant"],
		},
		Days: days,
	}, nil
}

// HourlyForecast retrieves one entry per hour upstream returned, in upstream order
func (c *OpenMeteoClientAdapter) HourlyForecast(ctx context.Context, req weather.HourlyForecastRequest) (*weather.HourlyForecastResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.WithDefaults()

	query := c.baseQuery(req.Location, req.UnitPreference)
	query.Set("forecast_hours", strconv.Itoa(req.ForecastHours))
	query.Set("hourly", strings.Join(hourlyFields, ","))

	var resp openMeteoSeriesResponse
	if err := getJSON(ctx, c.client, c.logger, openMeteoUpstream, c.endpoint(), query, &resp); err != nil {
		return nil, err
	}

	series, err := decodeSeries("hourly", resp.Hourly, hourlyFields)
	if err != nil {
		return nil, err
	}
	units, err := pickUnits("hourly_units", resp.HourlyUnits, append([]string{"time"}, hourlyFields...)...)
	if err != nil {
		return nil, err
	}

	hours := make([]weather.HourlyForecastEntry, 0, len(series.times))
	for i, ts := range series.times {
		hours = append(hours, weather.HourlyForecastEntry{
			Time:                     ts,
			HourIndex:                i,
			Temperature:              series.at("temperature_2m", i),
			RelativeHumidity:         series.at("relative_humidity_2m", i),
			Rain:                     series.at("rain", i),
			Visibility:               series.at("visibility", i),
			WindSpeed:                series.at("wind_speed_10m", i),
			WindDirection:            series.at("wind_direction_10m", i),
			PrecipitationProbability: series.at("precipitation_probability", i),
			Showers:                  series.at("showers", i),
			Snowfall:                 series.at("snowfall", i),
			CloudCover:               series.at("cloud_cover", i),
		})
	}

	return &weather.HourlyForecastResponse{
		Units: weather.HourlyForecastUnits{
			Time:                     units["time"],
			Temperature:              units["temperature_2m"],
			RelativeHumidity:         units["relative_humidity_2m"],
			Rain:                     units["rain"],
			Visibility:               units["visibility"],
			WindSpeed:                units["wind_speed_10m"],
			WindDirection:            units["wind_direction_10m"],
			PrecipitationProbability: units["precipitation_probability"],
			Showers:                  units["showers"],
			Snowfall:                 units["snowfall"],
			CloudCover:               units["cloud_cover"],
		},
		Hours: hours,
	}, nil
}

func (c *OpenMeteoClientAdapter) endpoint() string {
	return c.baseURL + "/v1/forecast"
}

func (c *OpenMeteoClientAdapter) baseQuery(location weather.Coordinate, units weather.UnitPreference) url.Values {
	units = units.WithDefaults()
	query := url.Values{}
	query.Set("latitude", formatFloat(location.Latitude))
	query.Set("longitude", formatFloat(location.Longitude))
	query.Set("temperature_unit", string(units.Temperature))
	query.Set("wind_speed_unit", string(units.WindSpeed))
	return query
}

// timeSeries holds a time axis and the parallel value arrays read against it
type timeSeries struct {
	times   []string
	columns map[string][]*float64
}

func (s *timeSeries) at(field string, i int) *float64 {
	return s.columns[field][i]
}

// decodeSeries reads the time axis and every requested column of a daily or hourly block.
// A column shorter than the time axis makes the whole response malformed.
func decodeSeries(block string, raw map[string]json.RawMessage, fields []string) (*timeSeries, error) {
	if raw == nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("response has no %s block", block), nil)
	}

	timeRaw, ok := raw["time"]
	if !ok {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.time is missing", block), nil)
	}
	var times []string
	if err := json.Unmarshal(timeRaw, &times); err != nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.time is not a list of timestamps", block), err)
	}
	if times == nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.time is null", block), nil)
	}
	for i, ts := range times {
		if ts == "" {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.time[%d] is empty", block, i), nil)
		}
	}

	series := &timeSeries{times: times, columns: make(map[string][]*float64, len(fields))}
	for _, field := range fields {
		columnRaw, ok := raw[field]
		if !ok {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.%s is missing", block, field), nil)
		}
		var values []*float64
		if err := json.Unmarshal(columnRaw, &values); err != nil {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.%s is not a list of numbers", block, field), err)
		}
		if len(values) < len(times) {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("%s.%s has %d values for %d timestamps", block, field, len(values), len(times)), nil)
		}
		series.columns[field] = values
	}

	return series, nil
}

func pickUnits(block string, units map[string]string, fields ...string) (map[string]string, error) {
	if units == nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("response has no %s block", block), nil)
	}
	picked := make(map[string]string, len(fields))
	for _, field := range fields {
		unit, ok := units[field]
		if !ok {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("%s.%s is missing", block, field), nil)
		}
		picked[field] = unit
	}
	return picked, nil
}
