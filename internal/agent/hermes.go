package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/llm"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
)

const defaultSuperiorityVector = "High-value, comprehensive solution"

type CompileInput struct {
	SelectedConcept *domain.ProductConcept `json:"selectedConcept" validate:"required"`
	SelectedAngle   *domain.MarketingAngle `json:"selectedAngle" validate:"required"`
	TrendSummary    json.RawMessage        `json:"trendSummary,omitempty"`
	Goal            string                 `json:"goal,omitempty"`
	TrendAnalysis   *domain.TrendAnalysis  `json:"trendAnalysis,omitempty"`
}

// Hermes compiles a selected concept and angle into a deployable launch blueprint.
type Hermes struct {
	llm   Completer
	clock clock.Clock
}

func NewHermes(c Completer, clk clock.Clock) *Hermes {
	if clk == nil {
		clk = clock.New()
	}
	return &Hermes{llm: c, clock: clk}
}

func (h *Hermes) CompileBlueprint(ctx context.Context, in CompileInput) (domain.Blueprint, error) {
	if in.SelectedConcept == nil || in.SelectedAngle == nil {
		return domain.Blueprint{}, missingInput("selectedConcept and selectedAngle are")
	}

	superiorityVector := defaultSuperiorityVector
	if in.TrendAnalysis != nil && in.TrendAnalysis.SuperiorityVector != "" {
		superiorityVector = in.TrendAnalysis.SuperiorityVector
	}

	ctxlogger.GetLogger(ctx).Info("compiling blueprint", "agent", NameHermes, "product", in.SelectedConcept.ProductName)

	var bp domain.Blueprint
	if err := h.llm.CompleteJSON(ctx, llm.Request{
		Prompt:      hermesPrompt(in, superiorityVector),
		MaxTokens:   3000,
		Temperature: 0.7,
	}, &bp); err != nil {
		return domain.Blueprint{}, fmt.Errorf("compile blueprint: %w", err)
	}

	if bp.WhopProductPayload == nil || bp.MarketingAssets == nil {
		return domain.Blueprint{}, invalidOutput(NameHermes, "missing whopProductPayload or marketingAssets")
	}

	if bp.WhopProductPayload.SuggestedPriceUSD <= 0 {
		bp.WhopProductPayload.SuggestedPriceUSD = domain.DefaultPriceUSD
	}

	bp.GeneratedAt = h.clock.Now().UTC()
	bp.Agent = NameHermes

	return bp, nil
}
