package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"weatheragent.app/internal/config"
)

// scriptedModel plays a model that resolves the place, then asks for current
// weather or a forecast depending on the question, then answers.
func scriptedModel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content any    `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var question, lastTool string
	toolResults := 0
	for _, m := range req.Messages {
		content, _ := m.Content.(string)
		switch m.Role {
		case "user":
			question = content
		case "tool":
			toolResults++
			lastTool = content
		}
	}

	message := map[string]any{"role": "assistant"}
	call := func(name, args string) {
		message["content"] = nil
		message["tool_calls"] = []any{map[string]any{
			"id":       fmt.Sprintf("call_%d", toolResults+1),
			"type":     "function",
			"function": map[string]any{"name": name, "arguments": args},
		}}
	}

	switch {
	case toolResults == 0:
		call("resolve_location", `{"name":"Casablanca"}`)
	case toolResults == 1 && strings.Contains(question, "forecast"):
		call("get_weather_forecast", fmt.Sprintf(`{"location":%s,"forecast_days":2}`, lastTool))
	case toolResults == 1:
		call("get_current_weather", fmt.Sprintf(`{"location":%s}`, lastTool))
	default:
		var current struct {
			Temperature     float64 `json:"temperature"`
			TemperatureUnit string  `json:"temperature_unit"`
		}
		_ = json.Unmarshal([]byte(lastTool), &current)
		message["content"] = fmt.Sprintf("It is %.1f %s in Casablanca.", current.Temperature, current.TemperatureUnit)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "llama3.2",
		"choices": []any{map[string]any{"index": 0, "finish_reason": "stop", "message": message}},
	})
}

func upstreams() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"Casablanca","latitude":33.5883,"longitude":-7.6114,"country":"Morocco"}]}`))
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("daily") != "" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {"temperature_2m": 21.4, "wind_speed_10m": 12.1, "relative_humidity_2m": 64, "visibility": 24140},
			"current_units": {"temperature_2m": "°C", "wind_speed_10m": "km/h", "relative_humidity_2m": "%", "visibility": "m"}
		}`))
	})
	return mux
}

type ApplicationTestSuite struct {
	suite.Suite
	application *Application
	router      *gin.Engine
}

func (s *ApplicationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	model := httptest.NewServer(http.HandlerFunc(scriptedModel))
	s.T().Cleanup(model.Close)
	upstream := httptest.NewServer(upstreams())
	s.T().Cleanup(upstream.Close)

	application, err := NewApplicationWithConfig(testConfig(s.T(), model.URL, upstream.URL))
	s.Require().NoError(err)

	s.application = application
	s.router = application.GetRouter()
}

func (s *ApplicationTestSuite) TearDownSuite() {
	if s.application != nil {
		s.NoError(s.application.deps.Cleanup())
	}
}

func testConfig(t *testing.T, modelURL, upstreamURL string) *config.Config {
	t.Helper()

	return &config.Config{
		Model: config.ModelConfig{BaseURL: modelURL, APIKey: "test-key", Name: "llama3.2"},
		Upstream: config.UpstreamConfig{
			ForecastBaseURL: upstreamURL,
			AlertsBaseURL:   upstreamURL,
			AlertsAPIKey:    "key",
			GeocodingURL:    upstreamURL + "/v1/search",
			TimeoutSeconds:  2,
		},
		Agent: config.AgentConfig{
			Name:          "Assistant",
			MaxTurns:      5,
			ExtendedTools: true,
			OpaqueTools:   []string{"get_weather_forecast"},
			ToolLogPath:   filepath.Join(t.TempDir(), "logs", "tools.log"),
		},
		Database: config.DatabaseConfig{Type: config.DatabaseTypeSQLite, SQLitePath: filepath.Join(t.TempDir(), "agent.db")},
		Session:  config.SessionConfig{StoreType: config.StoreTypeMemory, TTLMinutes: 10, MaxMessages: 20},
	}
}

func (s *ApplicationTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, path, reader))
	return w
}

func (s *ApplicationTestSuite) TestToolsAreListed() {
	w := s.do(http.MethodGet, "/api/tools", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Tools []struct {
			Name        string `json:"name"`
			FailureMode string `json:"failure_mode"`
		} `json:"tools"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body.Tools, 5)
	s.Len(s.application.ToolRegistry().Tools(), 5)

	modes := map[string]string{}
	for _, tool := range body.Tools {
		modes[tool.Name] = tool.FailureMode
	}
	s.Equal("opaque", modes["get_weather_forecast"])
	s.Equal("surfaced", modes["get_current_weather"])
}

func (s *ApplicationTestSuite) TestAskCurrentWeather() {
	w := s.do(http.MethodPost, "/api/ask", map[string]string{
		"question":   "What is the weather in Casablanca?",
		"session_id": "s-current",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var asked struct {
		ConversationID string `json:"conversation_id"`
		Answer         string `json:"answer"`
		Outcome        string `json:"outcome"`
		Turns          int    `json:"turns"`
		ToolCalls      []struct {
			Name string `json:"name"`
		} `json:"tool_calls"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &asked))
	s.Equal("It is 21.4 °C in Casablanca.", asked.Answer)
	s.Equal("answered", asked.Outcome)
	s.Equal(3, asked.Turns)
	s.Require().Len(asked.ToolCalls, 2)
	s.Equal("resolve_location", asked.ToolCalls[0].Name)
	s.Equal("get_current_weather", asked.ToolCalls[1].Name)

	w = s.do(http.MethodGet, "/api/conversations/"+asked.ConversationID, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/sessions/s-current/conversations", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), asked.ConversationID)

	w = s.do(http.MethodGet, "/api/stats", nil)
	s.Equal(http.StatusOK, w.Code)
	var stats struct {
		Outcomes map[string]int64 `json:"outcomes"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	s.GreaterOrEqual(stats.Outcomes["answered"], int64(1))
}

func (s *ApplicationTestSuite) TestAskForecastUpstreamFailure() {
	w := s.do(http.MethodPost, "/api/ask", map[string]string{
		"question": "What is the forecast for Casablanca?",
	})
	s.Require().Equal(http.StatusBadGateway, w.Code, w.Body.String())

	var body struct {
		Kind           string `json:"kind"`
		UpstreamStatus int    `json:"upstream_status"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("UPSTREAM_HTTP_ERROR", body.Kind)
	s.Equal(http.StatusServiceUnavailable, body.UpstreamStatus)
}

func (s *ApplicationTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *ApplicationTestSuite) TestMetrics() {
	s.do(http.MethodPost, "/api/ask", map[string]string{"question": "Weather in Casablanca?"})

	w := s.do(http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "weather_agent_runs_total")
	s.Contains(w.Body.String(), "weather_agent_upstream_requests_total")
	s.Contains(w.Body.String(), "go_goroutines")
}

func TestApplicationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func TestNewApplicationWithConfig_InvalidStore(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1", "http://127.0.0.1:1")
	cfg.Session.StoreType = config.StoreTypeUnknown

	_, err := NewApplicationWithConfig(cfg)
	assert.Error(t, err)
}
