package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	Geocoder      Geocoder
	WeatherClient WeatherClient
	AlertsClient  AlertsClient

	// Agent
	ChatModel ChatModel

	// Persistence
	ConversationRepository ConversationRepository
	SessionStore           SessionStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
