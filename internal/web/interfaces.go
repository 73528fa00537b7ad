package web

import (
	"context"

	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/trendsvc"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=web
type TrendService interface {
	Trends(ctx context.Context) (trendsvc.TrendsResponse, error)
	Refresh(ctx context.Context) (trendsvc.TrendsResponse, error)
}

type IdeaGenerator interface {
	GenerateDossier(ctx context.Context, in agent.IdeaInput) (domain.Dossier, error)
}

type BlueprintCompiler interface {
	CompileBlueprint(ctx context.Context, in agent.CompileInput) (domain.Blueprint, error)
}

type AssetGenerator interface {
	GenerateAssets(ctx context.Context, in agent.AssetInput) ([]domain.AssetPack, error)
}

type Entitlements interface {
	EnsureProfile(ctx context.Context, userID, email string) (domain.Profile, error)
	CheckTier(ctx context.Context, userID string, required domain.Tier) (domain.TierCheckResult, error)
	CheckUsage(ctx context.Context, userID string, feature domain.Feature) (domain.UsageResult, error)
	RecordUsage(ctx context.Context, userID string, feature domain.Feature) error
}

type PublishQueue interface {
	Enqueue(ctx context.Context, req domain.PublishRequest) (string, error)
}

type Billing interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	PortalURL(ctx context.Context, email string) (string, error)
}

type WhopWebhook interface {
	HandleWhopWebhook(ctx context.Context, payload []byte, signature string) error
}

type GenerationHistory interface {
	ListGenerations(ctx context.Context, userID string, limit int) ([]domain.Generation, error)
}
