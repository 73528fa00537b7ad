package agent

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/llm"
)

//go:generate mockgen -source=agent.go -destination=mock_agent.go -package=agent
type Completer interface {
	CompleteJSON(ctx context.Context, req llm.Request, out any) error
}

const (
	NameScout      = "Scout"
	NameAthena     = "Athena"
	NameHermes     = "Hermes"
	NameHephaestus = "Hephaestus"
)

func invalidOutput(agent, reason string) error {
	return fmt.Errorf("%w: %s: %s", domain.InvalidLLMOutput, agent, reason)
}

func missingInput(fields string) error {
	return fmt.Errorf("%w: %s required", domain.InvalidInput, fields)
}
