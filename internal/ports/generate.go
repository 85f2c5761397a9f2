// Package ports declares what the weather agent needs from the outside world:
// the chat model, the weather upstreams, session and transcript storage, and
// the ambient logger, metrics and configuration. Adapters implement these
// interfaces; internal/mocks holds the generated test doubles.
//
//go:generate mockery
package ports
