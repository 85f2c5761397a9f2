package external

import (
	"context"
	"net/url"
	"strings"
	"time"

	"weatheragent.app/internal/core/weather"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

const geocodingUpstream = "geocoding"

// GeocodingClientAdapter implements the Geocoder port against the Open-Meteo geocoding API
type GeocodingClientAdapter struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

// GeocodingClientParams holds parameters for creating the geocoding client
type GeocodingClientParams struct {
	URL     string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// NewGeocodingClientAdapter creates a new geocoding client adapter
func NewGeocodingClientAdapter(params GeocodingClientParams) ports.Geocoder {
	return &GeocodingClientAdapter{
		url:    params.URL,
		client: newHTTPClient(params.Client, params.Timeout),
		logger: params.Logger,
	}
}

// results stays a pointer so an absent key can be told apart from a list that is not a list
type geocodingResponse struct {
	Results *[]struct {
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Country   string   `json:"country"`
	} `json:"results"`
}

// ResolveLocation returns the coordinate of the best match for the place name
func (g *GeocodingClientAdapter) ResolveLocation(ctx context.Context, query weather.LocationQuery) (weather.Coordinate, error) {
	query.Name = strings.TrimSpace(query.Name)
	if err := query.Validate(); err != nil {
		return weather.Coordinate{}, err
	}

	params := url.Values{}
	params.Set("name", query.Name)
	params.Set("count", "1")

	var resp geocodingResponse
	if err := getJSON(ctx, g.client, g.logger, geocodingUpstream, g.url, params, &resp); err != nil {
		return weather.Coordinate{}, err
	}

	if resp.Results == nil || len(*resp.Results) == 0 {
		return weather.Coordinate{}, errors.NewNotFoundError("no location found for " + query.Name)
	}

	first := (*resp.Results)[0]
	if first.Latitude == nil || first.Longitude == nil {
		return weather.Coordinate{}, errors.NewMalformedResponseError("geocoding result lacks latitude or longitude", nil)
	}

	coordinate, err := weather.NewCoordinate(*first.Latitude, *first.Longitude)
	if err != nil {
		return weather.Coordinate{}, errors.NewMalformedResponseError("geocoding result is out of range", err)
	}

	g.logger.Debug("Location resolved",
		ports.F("name", query.Name),
		ports.F("match", first.Name),
		ports.F("country", first.Country))

	return coordinate, nil
}
