package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                    string     `json:"id" bson:"id"`
	Email                 string     `json:"email" bson:"email"`
	Tier                  Tier       `json:"subscription_tier" bson:"subscription_tier"`
	BlueprintsUsed        int        `json:"blueprints_used" bson:"blueprints_used"`
	CampaignsUsed         int        `json:"campaigns_used" bson:"campaigns_used"`
	MediaGenerations      int        `json:"media_generations" bson:"media_generations"`
	TrialExpiresAt        *time.Time `json:"trial_expires_at,omitempty" bson:"trial_expires_at,omitempty"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty" bson:"subscription_expires_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" bson:"updated_at"`
}

// NewTrialProfile starts a profile on the trial tier with the trial window open from now.
func NewTrialProfile(id, email string, now time.Time) Profile {
	expires := now.AddDate(0, 0, TierTrial.Limits().TrialDays)
	return Profile{
		ID:             id,
		Email:          email,
		Tier:           TierTrial,
		TrialExpiresAt: &expires,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type Feature string

const (
	FeatureBlueprint Feature = "blueprint"
	FeatureCampaign  Feature = "campaign"
	FeatureMedia     Feature = "media"
	FeatureLaunch    Feature = "launch"
)

func ParseFeature(s string) (Feature, error) {
	switch f := Feature(s); f {
	case FeatureBlueprint, FeatureCampaign, FeatureMedia, FeatureLaunch:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", UnknownFeature, s)
	}
}

// Counter is the profile field a feature consumes. Launches share the blueprint counter.
func (f Feature) Counter() string {
	switch f {
	case FeatureCampaign:
		return "campaigns_used"
	case FeatureMedia:
		return "media_generations"
	default:
		return "blueprints_used"
	}
}

type UsageReason string

const (
	ReasonTierLimit           UsageReason = "tier_limit"
	ReasonUsageLimit          UsageReason = "usage_limit"
	ReasonTrialExpired        UsageReason = "trial_expired"
	ReasonSubscriptionExpired UsageReason = "subscription_expired"
)

type UsageResult struct {
	Allowed   bool        `json:"allowed"`
	Reason    UsageReason `json:"reason,omitempty"`
	Message   string      `json:"message,omitempty"`
	Remaining int         `json:"remaining"`
	Limit     int         `json:"limit"`
}

// CheckUsage decides whether p may use feature f at now.
func CheckUsage(p Profile, f Feature, now time.Time) UsageResult {
	switch p.Tier {
	case TierPro, TierAgency:
		if p.SubscriptionExpiresAt != nil && p.SubscriptionExpiresAt.Before(now) {
			return UsageResult{
				Reason:  ReasonSubscriptionExpired,
				Message: "Subscription has expired. Please renew.",
			}
		}
	default:
		if p.TrialExpiresAt != nil && p.TrialExpiresAt.Before(now) {
			return UsageResult{
				Reason:  ReasonTrialExpired,
				Message: "Trial period has expired. Upgrade to continue.",
			}
		}
	}

	limits := p.Tier.Limits()

	var used, limit int
	switch f {
	case FeatureBlueprint, FeatureLaunch:
		used, limit = p.BlueprintsUsed, limits.Blueprints
	case FeatureCampaign:
		used, limit = p.CampaignsUsed, limits.Campaigns
	case FeatureMedia:
		used, limit = p.MediaGenerations, limits.MediaGenerations
	default:
		return UsageResult{
			Reason:  ReasonUsageLimit,
			Message: "Unknown feature type",
		}
	}

	if limit == Unlimited {
		return UsageResult{Allowed: true, Remaining: Unlimited, Limit: Unlimited}
	}

	if used >= limit {
		return UsageResult{
			Reason:  ReasonUsageLimit,
			Message: fmt.Sprintf("You've reached your %d %s limit for %s tier. Upgrade to continue.", limit, f, p.Tier),
			Limit:   limit,
		}
	}

	return UsageResult{Allowed: true, Remaining: limit - used, Limit: limit}
}

type UsageLog struct {
	ID        uuid.UUID `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Feature   Feature   `json:"feature_type" bson:"feature_type"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type GenerationStatus string

const (
	GenerationSuccess GenerationStatus = "success"
	GenerationFailed  GenerationStatus = "failed"
)

// Generation records a product produced for a user.
type Generation struct {
	ID                 uuid.UUID        `json:"id" bson:"id"`
	UserID             string           `json:"user_id" bson:"user_id"`
	Trend              string           `json:"trend" bson:"trend"`
	ProductName        string           `json:"product_name" bson:"product_name"`
	ProductDescription string           `json:"product_description,omitempty" bson:"product_description,omitempty"`
	ProductURL         string           `json:"product_url,omitempty" bson:"product_url,omitempty"`
	Status             GenerationStatus `json:"status" bson:"status"`
	CreatedAt          time.Time        `json:"created_at" bson:"created_at"`
}
