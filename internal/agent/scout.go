package agent

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/llm"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
)

const defaultMomentum = 50

// Scout discovers trending topics worth building a product around.
type Scout struct {
	llm   Completer
	clock clock.Clock
}

func NewScout(c Completer, clk clock.Clock) *Scout {
	if clk == nil {
		clk = clock.New()
	}
	return &Scout{llm: c, clock: clk}
}

type scoutTrend struct {
	Topic              string                    `json:"topic"`
	Category           string                    `json:"category"`
	MomentumScore      float64                   `json:"momentumScore"`
	WhyItMatters       string                    `json:"whyItMatters"`
	WhoItServes        string                    `json:"whoItServes"`
	MonetizationWindow domain.MonetizationWindow `json:"monetizationWindow"`
}

// FetchTrends asks the model for the current trends and returns them sorted by momentum, highest first.
// An empty answer is an error so that callers never cache an empty list.
func (s *Scout) FetchTrends(ctx context.Context) ([]domain.Trend, error) {
	l := ctxlogger.GetLogger(ctx)
	l.Info("fetching trends", "agent", NameScout)

	var out struct {
		Trends []scoutTrend `json:"trends"`
	}

	if err := s.llm.CompleteJSON(ctx, llm.Request{
		Prompt:      scoutPrompt(),
		MaxTokens:   3000,
		Temperature: 0.7,
	}, &out); err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}

	now := s.clock.Now().UTC()
	trends := make([]domain.Trend, 0, len(out.Trends))

	for i, t := range out.Trends {
		if strings.TrimSpace(t.Topic) == "" {
			continue
		}

		momentum := int(math.Round(t.MomentumScore))
		if momentum <= 0 {
			momentum = defaultMomentum
		}

		window := t.MonetizationWindow
		switch window {
		case domain.WindowShort, domain.WindowMedium, domain.WindowLong:
		default:
			window = domain.WindowMedium
		}

		trends = append(trends, domain.Trend{
			ID:            fmt.Sprintf("trend-%d-%d", now.UnixMilli(), i),
			Topic:         t.Topic,
			Category:      t.Category,
			MomentumScore: momentum,
			Summary: domain.TrendSummary{
				WhyItMatters:       t.WhyItMatters,
				WhoItServes:        t.WhoItServes,
				MonetizationWindow: window,
			},
			Source:    "aggregated",
			Timestamp: now,
		})
	}

	if len(trends) == 0 {
		return nil, invalidOutput(NameScout, "no trends returned")
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].MomentumScore > trends[j].MomentumScore
	})

	l.Info("trends fetched", "agent", NameScout, "count", len(trends))

	return trends, nil
}
