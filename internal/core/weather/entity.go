package weather

import (
	"strings"

	"weatheragent.app/pkg/errors"
	"weatheragent.app/pkg/validation"
)

const (
	MinForecastDays  = 2
	MaxForecastDays  = 16
	MinForecastHours = 1
	MaxForecastHours = 168

	DefaultForecastHours = 12
)

// TemperatureUnit is the unit Open-Meteo should report temperatures in
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// WindSpeedUnit is the unit Open-Meteo should report wind speeds in
type WindSpeedUnit string

const (
	KilometersPerHour WindSpeedUnit = "kmh"
	MetersPerSecond   WindSpeedUnit = "ms"
	MilesPerHour      WindSpeedUnit = "mph"
	Knots             WindSpeedUnit = "kn"
)

// Coordinate is a validated point on the globe
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90" jsonschema:"minimum=-90,maximum=90,description=Latitude in degrees"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180" jsonschema:"minimum=-180,maximum=180,description=Longitude in degrees"`
}

// NewCoordinate builds a Coordinate or fails with a validation error
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks both axes are within range
func (c Coordinate) Validate() error {
	return validate("invalid coordinate", c)
}

// UnitPreference selects the units upstream reports values in
type UnitPreference struct {
	Temperature TemperatureUnit `json:"temperature_unit,omitempty" validate:"omitempty,oneof=celsius fahrenheit" jsonschema:"enum=celsius,enum=fahrenheit,default=celsius,description=Temperature unit"`
	WindSpeed   WindSpeedUnit   `json:"wind_speed_unit,omitempty" validate:"omitempty,oneof=kmh ms mph kn" jsonschema:"enum=kmh,enum=ms,enum=mph,enum=kn,default=kmh,description=Wind speed unit"`
}

// WithDefaults fills unset units with celsius and kmh
func (u UnitPreference) WithDefaults() UnitPreference {
	if u.Temperature == "" {
		u.Temperature = Celsius
	}
	if u.WindSpeed == "" {
		u.WindSpeed = KilometersPerHour
	}
	return u
}

// LocationQuery is a free-text place name to geocode
type LocationQuery struct {
	Name string `json:"name" validate:"required,max=200" jsonschema:"minLength=1,maxLength=200,description=Place name to look up (city or town or region)"`
}

// Validate checks the name is present after trimming
func (q LocationQuery) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return errors.NewValidationError("location name cannot be empty")
	}
	return validate("invalid location query", q)
}

// CurrentWeatherRequest asks for current conditions at a coordinate
type CurrentWeatherRequest struct {
	Location Coordinate `json:"location" jsonschema_description:"The location created from latitude and longitude"`
	UnitPreference
}

// Validate checks location and units
func (r CurrentWeatherRequest) Validate() error {
	return validate("invalid current weather request", r)
}

// ForecastRequest asks for a multi-day daily forecast
type ForecastRequest struct {
	Location     Coordinate `json:"location" jsonschema_description:"The location created from latitude and longitude"`
	ForecastDays int        `json:"forecast_days" validate:"gte=2,lte=16" jsonschema:"minimum=2,maximum=16,description=Number of forecast days including today"`
	UnitPreference
}

// Validate checks location, units and the day count
func (r ForecastRequest) Validate() error {
	return validate("invalid forecast request", r)
}

// HourlyForecastRequest asks for an hour-by-hour forecast
type HourlyForecastRequest struct {
	Location      Coordinate `json:"location" jsonschema_description:"The location created from latitude and longitude"`
	ForecastHours int        `json:"forecast_hours,omitempty" validate:"omitempty,gte=1,lte=168" jsonschema:"minimum=1,maximum=168,default=12,description=Number of hours to forecast"`
	UnitPreference
}

// Validate checks location, units and the hour count
func (r HourlyForecastRequest) Validate() error {
	return validate("invalid hourly forecast request", r)
}

// WithDefaults fills in the hour count and units
func (r HourlyForecastRequest) WithDefaults() HourlyForecastRequest {
	if r.ForecastHours == 0 {
		r.ForecastHours = DefaultForecastHours
	}
	r.UnitPreference = r.UnitPreference.WithDefaults()
	return r
}

// AlertsRequest asks for active weather alerts around a place
type AlertsRequest struct {
	Query string `json:"query" validate:"required,max=200" jsonschema:"minLength=1,maxLength=200,description=City name or postcode or lat and lon pair"`
}

// Validate checks the query is present
func (r AlertsRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.NewValidationError("alerts query cannot be empty")
	}
	return validate("invalid alerts request", r)
}

// CurrentConditions carries values together with the unit strings upstream reported
type CurrentConditions struct {
	Temperature          float64 `json:"temperature"`
	WindSpeed            float64 `json:"wind_speed"`
	RelativeHumidity     float64 `json:"relative_humidity"`
	Visibility           float64 `json:"visibility"`
	TemperatureUnit      string  `json:"temperature_unit"`
	WindSpeedUnit        string  `json:"wind_speed_unit"`
	RelativeHumidityUnit string  `json:"relative_humidity_unit"`
	VisibilityUnit       string  `json:"visibility_unit"`
}

// DailyForecastUnits is the unit set shared by every day of a forecast
type DailyForecastUnits struct {
	Time                        string `json:"time"`
	TemperatureMax              string `json:"temperature_max"`
	TemperatureMin              string `json:"temperature_min"`
	PrecipitationProbabilityMax string `json:"precipitation_probability_max"`
	WindSpeedMax                string `json:"wind_speed_max"`
	PrecipitationHours          string `json:"precipitation_hours"`
	PrecipitationSum            string `json:"precipitation_sum"`
	WindGustsMax                string `json:"wind_gusts_max"`
	WindDirectionDominant       string `json:"wind_direction_dominant"`
}

// DailyForecastEntry is one forecast day. Values upstream reported as null stay nil.
type DailyForecastEntry struct {
	Date                        string   `json:"date"`
	DayIndex                    int      `json:"day_index"`
	TemperatureMax              *float64 `json:"temperature_max"`
	TemperatureMin              *float64 `json:"temperature_min"`
	PrecipitationProbabilityMax *float64 `json:"precipitation_probability_max"`
	WindSpeedMax                *float64 `json:"wind_speed_max"`
	PrecipitationHours          *float64 `json:"precipitation_hours"`
	PrecipitationSum            *float64 `json:"precipitation_sum"`
	WindGustsMax                *float64 `json:"wind_gusts_max"`
	WindDirectionDominant       *float64 `json:"wind_direction_dominant"`
}

// DailyForecastResponse holds days in upstream order
type DailyForecastResponse struct {
	Units DailyForecastUnits   `json:"units"`
	Days  []DailyForecastEntry `json:"days"`
}

// HourlyForecastUnits is the unit set shared by every hour of a forecast
type HourlyForecastUnits struct {
	Time                     string `json:"time"`
	Temperature              string `json:"temperature"`
	RelativeHumidity         string `json:"relative_humidity"`
	Rain                     string `json:"rain"`
	Visibility               string `json:"visibility"`
	WindSpeed                string `json:"wind_speed"`
	WindDirection            string `json:"wind_direction"`
	PrecipitationProbability string `json:"precipitation_probability"`
	Showers                  string `json:"showers"`
	Snowfall                 string `json:"snowfall"`
	CloudCover               string `json:"cloud_cover"`
}

// HourlyForecastEntry is one forecast hour
type HourlyForecastEntry struct {
	Time                     string   `json:"time"`
	HourIndex                int      `json:"hour_index"`
	Temperature              *float64 `json:"temperature"`
	RelativeHumidity         *float64 `json:"relative_humidity"`
	Rain                     *float64 `json:"rain"`
	Visibility               *float64 `json:"visibility"`
	WindSpeed                *float64 `json:"wind_speed"`
	WindDirection            *float64 `json:"wind_direction"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
	Showers                  *float64 `json:"showers"`
	Snowfall                 *float64 `json:"snowfall"`
	CloudCover               *float64 `json:"cloud_cover"`
}

// HourlyForecastResponse holds hours in upstream order
type HourlyForecastResponse struct {
	Units HourlyForecastUnits   `json:"units"`
	Hours []HourlyForecastEntry `json:"hours"`
}

// Alert is a single active weather alert
type Alert struct {
	Headline    string `json:"headline"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Event       string `json:"event"`
	Areas       string `json:"areas"`
	Effective   string `json:"effective"`
	Expires     string `json:"expires"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// AlertsResponse lists alerts for the resolved place
type AlertsResponse struct {
	Location string  `json:"location"`
	Country  string  `json:"country"`
	Alerts   []Alert `json:"alerts"`
}

func validate(context string, s interface{}) error {
	if err := validation.Struct(s); err != nil {
		return errors.NewValidationError(context + ": " + err.Error())
	}
	return nil
}
