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

const alertsUpstream = "weatherapi alerts"

// WeatherAPIAlertsClientAdapter implements the AlertsClient port for WeatherAPI.com
type WeatherAPIAlertsClientAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIAlertsClientParams holds parameters for creating the alerts client
type WeatherAPIAlertsClientParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// NewWeatherAPIAlertsClientAdapter creates a new WeatherAPI.com alerts client adapter
func NewWeatherAPIAlertsClientAdapter(params WeatherAPIAlertsClientParams) ports.AlertsClient {
	return &WeatherAPIAlertsClientAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  newHTTPClient(params.Client, params.Timeout),
		logger:  params.Logger,
	}
}

// weatherAPIAlertsResponse represents the response from WeatherAPI.com alerts.json
type weatherAPIAlertsResponse struct {
	Location *struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Alerts *struct {
		Alert []struct {
			Headline    string `json:"headline"`
			Severity    string `json:"severity"`
			Urgency     string `json:"urgency"`
			Event       string `json:"event"`
			Areas       string `json:"areas"`
			Effective   string `json:"effective"`
			Expires     string `json:"expires"`
			Desc        string `json:"desc"`
			Instruction string `json:"instruction"`
		} `json:"alert"`
	} `json:"alerts"`
}

// Alerts retrieves active alerts for the queried place
func (a *WeatherAPIAlertsClientAdapter) Alerts(ctx context.Context, req weather.AlertsRequest) (*weather.AlertsResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("key", a.apiKey)
	query.Set("q", req.Query)

	var resp weatherAPIAlertsResponse
	if err := getJSON(ctx, a.client, a.logger, alertsUpstream, a.baseURL+"/v1/alerts.json", query, &resp); err != nil {
		return nil, err
	}

	if resp.Location == nil || resp.Alerts == nil {
		return nil, errors.NewMalformedResponseError("alerts response lacks location or alerts", nil)
	}

	result := &weather.AlertsResponse{
		Location: resp.Location.Name,
		Country:  resp.Location.Country,
		Alerts:   make([]weather.Alert, 0, len(resp.Alerts.Alert)),
	}
	for _, alert := range resp.Alerts.Alert {
		result.Alerts = append(result.Alerts, weather.Alert{
			Headline:    alert.Headline,
			Severity:    alert.Severity,
			Urgency:     alert.Urgency,
			Event:       alert.Event,
			Areas:       alert.Areas,
			Effective:   alert.Effective,
			Expires:     alert.Expires,
			Description: alert.Desc,
			Instruction: alert.Instruction,
		})
	}

	return result, nil
}
