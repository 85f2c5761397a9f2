package agent

import (
	"strings"

	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// Agent is the persona the runner drives: a name, a system instruction and a model id
type Agent struct {
	Name         string
	Instructions string
	Model        string
}

// NewAgent builds an agent from configuration
func NewAgent(cfg ports.AgentConfig) (Agent, error) {
	a := Agent{
		Name:         strings.TrimSpace(cfg.Name),
		Instructions: strings.TrimSpace(cfg.Instructions),
		Model:        strings.TrimSpace(cfg.Model),
	}
	if err := a.Validate(); err != nil {
		return Agent{}, err
	}
	return a, nil
}

// Validate checks the agent can be sent to a model
func (a Agent) Validate() error {
	if a.Name == "" {
		return errors.NewConfigurationError("agent name cannot be empty", nil)
	}
	if a.Model == "" {
		return errors.NewConfigurationError("agent model cannot be empty", nil)
	}
	return nil
}
