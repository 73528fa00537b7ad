package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/profilestore"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
)

// Service answers tier and usage questions for a user. The tier comparison itself is pure and
// lives in domain; this layer only loads the profile.
type Service struct {
	repo  profilestore.Repository
	clock clock.Clock
}

func NewService(repo profilestore.Repository, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.New()
	}
	return &Service{repo: repo, clock: clk}
}

// EnsureProfile returns the profile of userID, creating a trial profile on first sight.
// When email already belongs to another profile the new one is created without it.
func (s *Service) EnsureProfile(ctx context.Context, userID, email string) (domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ProfileNotFound) {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	l := ctxlogger.GetLogger(ctx)

	p = domain.NewTrialProfile(userID, email, s.clock.Now().UTC())
	err = s.repo.CreateProfile(ctx, p)
	if errors.Is(err, domain.ProfileExists) {
		existing, getErr := s.repo.GetProfile(ctx, userID)
		if getErr == nil {
			return existing, nil
		}
		if !errors.Is(getErr, domain.ProfileNotFound) || p.Email == "" {
			return domain.Profile{}, fmt.Errorf("reload profile after conflict: %w", getErr)
		}

		l.Warn("email owned by another profile, creating profile without it", "user_id", userID)
		p.Email = ""
		err = s.repo.CreateProfile(ctx, p)
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	l.Info("trial profile created", "user_id", userID)
	return p, nil
}

// CheckTier denies users without a profile and users whose stored tier is not recognized.
func (s *Service) CheckTier(ctx context.Context, userID string, required domain.Tier) (domain.TierCheckResult, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, domain.ProfileNotFound) {
		return domain.TierCheckResult{
			CurrentTier:  domain.TierTrial,
			RequiredTier: required,
			Message:      "User profile not found",
		}, nil
	}
	if err != nil {
		return domain.TierCheckResult{}, fmt.Errorf("check tier: %w", err)
	}

	if !p.Tier.Valid() {
		ctxlogger.GetLogger(ctx).Warn("unrecognized tier, treating as lowest", "user_id", userID, "tier", p.Tier)
	}

	return domain.NewTierCheckResult(p.Tier, required), nil
}

func (s *Service) CheckUsage(ctx context.Context, userID string, feature domain.Feature) (domain.UsageResult, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, domain.ProfileNotFound) {
		return domain.UsageResult{
			Reason:  domain.ReasonTierLimit,
			Message: "Profile not found",
		}, nil
	}
	if err != nil {
		return domain.UsageResult{}, fmt.Errorf("check usage: %w", err)
	}

	return domain.CheckUsage(p, feature, s.clock.Now()), nil
}

// RecordUsage increments the feature counter and appends a usage log entry.
func (s *Service) RecordUsage(ctx context.Context, userID string, feature domain.Feature) error {
	p, err := s.repo.IncrementUsage(ctx, userID, feature)
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("usage recorded",
		"user_id", userID,
		"feature", feature,
		"blueprints_used", p.BlueprintsUsed,
		"campaigns_used", p.CampaignsUsed,
		"media_generations", p.MediaGenerations,
	)

	return nil
}
