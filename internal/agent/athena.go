package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/llm"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
)

const conceptCount = 3

type IdeaInput struct {
	TrendSummary json.RawMessage `json:"trendSummary" validate:"required"`
	Goal         string          `json:"goal" validate:"required"`
	ProductType  string          `json:"productType" validate:"required"`
}

// Athena turns a trend into a dossier of product concepts and marketing angles.
type Athena struct {
	llm   Completer
	clock clock.Clock
}

func NewAthena(c Completer, clk clock.Clock) *Athena {
	if clk == nil {
		clk = clock.New()
	}
	return &Athena{llm: c, clock: clk}
}

func (a *Athena) GenerateDossier(ctx context.Context, in IdeaInput) (domain.Dossier, error) {
	summary := strings.TrimSpace(string(in.TrendSummary))
	if summary == "" || summary == "null" || in.Goal == "" || in.ProductType == "" {
		return domain.Dossier{}, missingInput("trendSummary, goal, and productType are")
	}

	l := ctxlogger.GetLogger(ctx)
	l.Info("generating dossier", "agent", NameAthena, "product_type", in.ProductType, "goal", in.Goal)

	var out struct {
		TrendAnalysis   *domain.TrendAnalysis   `json:"trendAnalysis"`
		ProductConcepts []domain.ProductConcept `json:"productConcepts"`
	}

	if err := a.llm.CompleteJSON(ctx, llm.Request{
		Prompt:      athenaPrompt(in),
		MaxTokens:   4000,
		Temperature: 0.7,
	}, &out); err != nil {
		return domain.Dossier{}, fmt.Errorf("generate dossier: %w", err)
	}

	if out.TrendAnalysis == nil {
		return domain.Dossier{}, invalidOutput(NameAthena, "missing trendAnalysis")
	}

	if len(out.ProductConcepts) != conceptCount {
		return domain.Dossier{}, invalidOutput(NameAthena, fmt.Sprintf("expected %d product concepts, got %d", conceptCount, len(out.ProductConcepts)))
	}

	if len(out.ProductConcepts[0].MarketingAngles) == 0 {
		l.Warn("lead concept has no marketing angles", "agent", NameAthena)
	}

	return domain.Dossier{
		TrendAnalysis:   *out.TrendAnalysis,
		ProductConcepts: out.ProductConcepts,
		GeneratedAt:     a.clock.Now().UTC(),
		Trend:           in.TrendSummary,
		Goal:            in.Goal,
		ProductType:     in.ProductType,
		Agent:           NameAthena,
	}, nil
}
