package agent

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/llm"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

const (
	maxAngles    = 3
	defaultAngle = "Authority"
)

type AssetInput struct {
	ProductName           string                  `json:"productName" validate:"required"`
	ProductDescription    string                  `json:"productDescription" validate:"required"`
	MarketingAngles       []domain.MarketingAngle `json:"marketingAngles" validate:"required,min=1"`
	CoreCurriculumOutline []string                `json:"coreCurriculumOutline,omitempty"`
}

// Forge generates the visual direction (Hephaestus) for each marketing angle of a product.
type Forge struct {
	llm   Completer
	clock clock.Clock
}

func NewForge(c Completer, clk clock.Clock) *Forge {
	if clk == nil {
		clk = clock.New()
	}
	return &Forge{llm: c, clock: clk}
}

// GenerateAssets runs one generation per angle concurrently. The result keeps the angle order and
// the first failure cancels the remaining generations.
func (f *Forge) GenerateAssets(ctx context.Context, in AssetInput) ([]domain.AssetPack, error) {
	if in.ProductName == "" || in.ProductDescription == "" || len(in.MarketingAngles) == 0 {
		return nil, missingInput("productName, productDescription, and marketingAngle are")
	}

	angles := in.MarketingAngles
	if len(angles) > maxAngles {
		angles = angles[:maxAngles]
	}

	ctxlogger.GetLogger(ctx).Info("generating assets", "agent", NameHephaestus, "product", in.ProductName, "angles", len(angles))

	packs := make([]domain.AssetPack, len(angles))
	g, gctx := errgroup.WithContext(ctx)

	for i, angle := range angles {
		if angle.AngleType == "" {
			angle.AngleType = defaultAngle
		}

		g.Go(func() error {
			pack, err := f.generate(gctx, in, angle)
			if err != nil {
				return fmt.Errorf("angle %q: %w", angle.AngleType, err)
			}
			packs[i] = pack
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate assets: %w", err)
	}

	return packs, nil
}

func (f *Forge) generate(ctx context.Context, in AssetInput, angle domain.MarketingAngle) (domain.AssetPack, error) {
	var pack domain.AssetPack
	if err := f.llm.CompleteJSON(ctx, llm.Request{
		Prompt:      hephaestusPrompt(in, angle),
		MaxTokens:   2000,
		Temperature: 0.8,
	}, &pack); err != nil {
		return domain.AssetPack{}, err
	}

	if pack.VisualMetaphor == "" || pack.StyleMood == "" {
		return domain.AssetPack{}, invalidOutput(NameHephaestus, "missing visualMetaphor or styleMood")
	}

	if !pack.ImagePrompts.Complete() {
		return domain.AssetPack{}, invalidOutput(NameHephaestus, "missing required image prompts")
	}

	pack.AngleType = angle.AngleType
	pack.GeneratedAt = f.clock.Now().UTC()
	pack.Agent = NameHephaestus

	return pack, nil
}
