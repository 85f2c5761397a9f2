package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

var places = map[string]place{
	"casablanca": {Name: "Casablanca", Latitude: 33.5883, Longitude: -7.6114, Country: "Morocco"},
	"lviv":       {Name: "Lviv", Latitude: 49.8383, Longitude: 24.0232, Country: "Ukraine"},
	"london":     {Name: "London", Latitude: 51.5085, Longitude: -0.1257, Country: "United Kingdom"},
}

var dailyFields = []string{
	"temperature_2m_max", "temperature_2m_min", "precipitation_probability_max", "wind_speed_10m_max",
	"precipitation_hours", "precipitation_sum", "wind_gusts_10m_max", "wind_direction_10m_dominant",
}

var hourlyFields = []string{
	"temperature_2m", "relative_humidity_2m", "rain", "visibility", "wind_speed_10m",
	"wind_direction_10m", "precipitation_probability", "showers", "snowfall", "cloud_cover",
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Open-Meteo geocoding
	r.GET("/v1/search", func(c *gin.Context) {
		name := strings.ToLower(strings.TrimSpace(c.Query("name")))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "Parameter 'name' is required"})
			return
		}
		if failed(c, name) {
			return
		}

		p, exists := places[name]
		if !exists {
			c.JSON(http.StatusOK, gin.H{"generationtime_ms": 0.5})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": []place{p}})
	})

	// Open-Meteo forecast: current, daily and hourly blocks
	r.GET("/v1/forecast", func(c *gin.Context) {
		if c.Query("latitude") == "" || c.Query("longitude") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "latitude and longitude are required"})
			return
		}
		if failed(c, c.Query("latitude")) {
			return
		}

		temperatureUnit := c.DefaultQuery("temperature_unit", "celsius")
		windUnit := c.DefaultQuery("wind_speed_unit", "kmh")
		body := gin.H{"latitude": c.Query("latitude"), "longitude": c.Query("longitude")}

		if c.Query("current") != "" {
			body["current"] = gin.H{
				"time":                 time.Now().UTC().Format("2006-01-02T15:04"),
				"temperature_2m":       21.4,
				"wind_speed_10m":       12.1,
				"relative_humidity_2m": 64,
				"visibility":           24140,
			}
			body["current_units"] = gin.H{
				"temperature_2m":       unitSymbol(temperatureUnit),
				"wind_speed_10m":       windSymbol(windUnit),
				"relative_humidity_2m": "%",
				"visibility":           "m",
			}
		}

		if days, err := strconv.Atoi(c.Query("forecast_days")); err == nil && c.Query("daily") != "" {
			if days < 1 || days > 16 {
				c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "forecast_days must be between 1 and 16"})
				return
			}
			block, units := series(days, 24*time.Hour, "2006-01-02", dailyFields, temperatureUnit, windUnit)
			body["daily"] = block
			body["daily_units"] = units
		}

		if hours, err := strconv.Atoi(c.Query("forecast_hours")); err == nil && c.Query("hourly") != "" {
			block, units := series(hours, time.Hour, "2006-01-02T15:04", hourlyFields, temperatureUnit, windUnit)
			body["hourly"] = block
			body["hourly_units"] = units
		}

		c.JSON(http.StatusOK, body)
	})

	// WeatherAPI alerts
	r.GET("/v1/alerts.json", func(c *gin.Context) {
		if c.Query("key") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": 1002, "message": "API key is invalid or not provided."}})
			return
		}
		q := strings.ToLower(strings.TrimSpace(c.Query("q")))
		if failed(c, q) {
			return
		}

		p, exists := places[q]
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": 1006, "message": "No matching location found."}})
			return
		}

		alerts := []gin.H{}
		if q == "casablanca" {
			alerts = append(alerts, gin.H{
				"headline":    "Strong wind warning",
				"severity":    "Moderate",
				"urgency":     "Expected",
				"event":       "Wind",
				"areas":       "Grand Casablanca",
				"effective":   time.Now().UTC().Format(time.RFC3339),
				"expires":     time.Now().UTC().Add(12 * time.Hour).Format(time.RFC3339),
				"desc":        "Gusts up to 70 km/h along the coast.",
				"instruction": "Secure loose objects.",
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"location": gin.H{"name": p.Name, "country": p.Country},
			"alerts":   gin.H{"alert": alerts},
		})
	})

	slog.Info("Mock weather upstreams starting on :8080")
	if err := r.Run(":8080"); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// failed answers with an error for the reserved trigger values
func failed(c *gin.Context, value string) bool {
	switch value {
	case "servererror", "99":
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return true
	case "timeout", "98":
		time.Sleep(30 * time.Second)
		c.AbortWithStatus(http.StatusGatewayTimeout)
		return true
	case "malformed", "97":
		c.Data(http.StatusOK, "application/json", []byte("{not json"))
		return true
	}
	return false
}

func series(n int, step time.Duration, layout string, fields []string, temperatureUnit, windUnit string) (gin.H, gin.H) {
	start := time.Now().UTC().Truncate(step)
	times := make([]string, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step).Format(layout)
	}

	block := gin.H{"time": times}
	units := gin.H{"time": "iso8601"}
	for i, field := range fields {
		values := make([]any, n)
		for j := range values {
			values[j] = float64(10 + (i*3+j)%15)
		}
		// The last entry mimics a gap in the upstream data
		if n > 2 && field == "precipitation_probability_max" {
			values[n-1] = nil
		}
		block[field] = values

		switch {
		case strings.HasPrefix(field, "temperature"):
			units[field] = unitSymbol(temperatureUnit)
		case strings.HasPrefix(field, "wind_speed"), strings.HasPrefix(field, "wind_gusts"):
			units[field] = windSymbol(windUnit)
		case strings.HasPrefix(field, "wind_direction"):
			units[field] = "°"
		case field == "precipitation_hours":
			units[field] = "h"
		case field == "precipitation_sum", field == "rain", field == "showers":
			units[field] = "mm"
		case field == "snowfall":
			units[field] = "cm"
		case field == "visibility":
			units[field] = "m"
		default:
			units[field] = "%"
		}
	}
	return block, units
}

func unitSymbol(unit string) string {
	if unit == "fahrenheit" {
		return "°F"
	}
	return "°C"
}

func windSymbol(unit string) string {
	switch unit {
	case "ms":
		return "m/s"
	case "mph":
		return "mp/h"
	case "kn":
		return "kn"
	default:
		return "km/h"
	}
}
