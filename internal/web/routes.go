package web

import (
	"github.com/IsaacDSC/trendforge/pkg/cachemanager"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

type Dependencies struct {
	Trends       TrendService
	Ideas        IdeaGenerator
	IdeasCache   cachemanager.Cache
	Blueprints   BlueprintCompiler
	Assets       AssetGenerator
	Entitlements Entitlements
	Publish      PublishQueue
	Billing      Billing
	WhopWebhook  WhopWebhook
	History      GenerationHistory
}

func Routes(d Dependencies) []httpadapter.HttpHandle {
	return []httpadapter.HttpHandle{
		GetHealthCheckHandle(),
		GetTrendsHandle(d.Trends),
		RefreshTrendsHandle(d.Trends),
		GenerateIdeasHandle(d.Ideas, d.IdeasCache),
		CompileBlueprintHandle(d.Blueprints, d.Entitlements),
		GenerateAssetsHandle(d.Assets, d.Entitlements),
		PublishHandle(d.Publish, d.Entitlements),
		GetEntitlementHandle(d.Entitlements),
		ListGenerationsHandle(d.History),
		StripeWebhookHandle(d.Billing),
		WhopWebhookHandle(d.WhopWebhook),
		BillingPortalHandle(d.Billing),
	}
}
