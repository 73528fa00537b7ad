package profilestore

import (
	"context"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=profilestore
type Repository interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (domain.Profile, error)
	CreateProfile(ctx context.Context, p domain.Profile) error
	UpdateTier(ctx context.Context, id string, tier domain.Tier, subscriptionExpiresAt *time.Time) error
	IncrementUsage(ctx context.Context, id string, feature domain.Feature) (domain.Profile, error)
	RecordGeneration(ctx context.Context, g domain.Generation) error
	ListGenerations(ctx context.Context, userID string, limit int) ([]domain.Generation, error)
}

const DefaultListLimit = 20

func listLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return DefaultListLimit
	}
	return limit
}
