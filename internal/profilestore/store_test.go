package profilestore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_Profiles(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	email := gofakeit.Email()
	p := domain.NewTrialProfile("user-1", email, now)
	require.NoError(t, store.CreateProfile(ctx, p))

	t.Run("duplicate id", func(t *testing.T) {
		assert.ErrorIs(t, store.CreateProfile(ctx, domain.NewTrialProfile("user-1", gofakeit.Email(), now)), domain.ProfileExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		assert.ErrorIs(t, store.CreateProfile(ctx, domain.NewTrialProfile("user-2", email, now)), domain.ProfileExists)
	})

	t.Run("get and find by email", func(t *testing.T) {
		got, err := store.GetProfile(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, p, got)

		byEmail, err := store.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "user-1", byEmail.ID)

		_, err = store.GetProfile(ctx, "missing")
		assert.ErrorIs(t, err, domain.ProfileNotFound)

		_, err = store.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ProfileNotFound)
	})

	t.Run("update tier", func(t *testing.T) {
		expires := now.AddDate(0, 1, 0)
		require.NoError(t, store.UpdateTier(ctx, "user-1", domain.TierPro, &expires))

		got, err := store.GetProfile(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, domain.TierPro, got.Tier)
		assert.Equal(t, &expires, got.SubscriptionExpiresAt)

		assert.ErrorIs(t, store.UpdateTier(ctx, "missing", domain.TierPro, nil), domain.ProfileNotFound)
	})
}

func TestMemStore_IncrementUsage(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.CreateProfile(ctx, domain.NewTrialProfile("u", "", time.Now())))

	tests := []struct {
		feature domain.Feature
		check   func(p domain.Profile) int
	}{
		{domain.FeatureBlueprint, func(p domain.Profile) int { return p.BlueprintsUsed }},
		{domain.FeatureCampaign, func(p domain.Profile) int { return p.CampaignsUsed }},
		{domain.FeatureMedia, func(p domain.Profile) int { return p.MediaGenerations }},
	}

	for _, tt := range tests {
		t.Run(string(tt.feature), func(t *testing.T) {
			p, err := store.IncrementUsage(ctx, "u", tt.feature)
			require.NoError(t, err)
			assert.Equal(t, 1, tt.check(p))
		})
	}

	p, err := store.IncrementUsage(ctx, "u", domain.FeatureLaunch)
	require.NoError(t, err)
	assert.Equal(t, 2, p.BlueprintsUsed, "launch shares the blueprint counter")
	assert.Len(t, store.UsageLogs("u"), 4)

	_, err = store.IncrementUsage(ctx, "u", domain.Feature("video"))
	assert.ErrorIs(t, err, domain.UnknownFeature)

	_, err = store.IncrementUsage(ctx, "missing", domain.FeatureMedia)
	assert.ErrorIs(t, err, domain.ProfileNotFound)
}

func TestMemStore_IncrementUsage_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.CreateProfile(ctx, domain.NewTrialProfile("u", "", time.Now())))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.IncrementUsage(ctx, "u", domain.FeatureBlueprint)
		}()
	}
	wg.Wait()

	p, err := store.GetProfile(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 50, p.BlueprintsUsed)
}

func TestMemStore_Generations(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		require.NoError(t, store.RecordGeneration(ctx, domain.Generation{
			UserID:      "u",
			Trend:       gofakeit.BuzzWord(),
			ProductName: fmt.Sprintf("product-%d", i),
			Status:      domain.GenerationSuccess,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.RecordGeneration(ctx, domain.Generation{UserID: "other", ProductName: "x"}))

	list, err := store.ListGenerations(ctx, "u", 0)
	require.NoError(t, err)
	require.Len(t, list, DefaultListLimit)
	assert.Equal(t, "product-24", list[0].ProductName)

	list, err = store.ListGenerations(ctx, "u", 5)
	require.NoError(t, err)
	assert.Len(t, list, 5)

	other, err := store.ListGenerations(ctx, "other", 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.NotEqual(t, uuid.Nil, other[0].ID)
	assert.False(t, other[0].CreatedAt.IsZero())
}

func TestMapPgError(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, mapPgError(ctx, "op", nil))
	assert.ErrorIs(t, mapPgError(ctx, "op", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), domain.ProfileExists)
	assert.ErrorIs(t, mapPgError(ctx, "op", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})), domain.ProfileNotFound)

	err := mapPgError(ctx, "create profile", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to create profile")
}
