package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
)

const (
	WhopSignatureHeader = "X-Whop-Signature"

	whopSubscriptionCreated   = "subscription.created"
	whopSubscriptionUpdated   = "subscription.updated"
	whopSubscriptionCancelled = "subscription.cancelled"
)

type whopEvent struct {
	Event string `json:"event"`
	Data  struct {
		UserID    string   `json:"user_id"`
		Status    string   `json:"status"`
		ExpiresAt whopTime `json:"expires_at"`
	} `json:"data"`
}

// whopTime accepts RFC3339 strings and unix timestamps (seconds, or milliseconds past 1e12).
type whopTime struct {
	t *time.Time
}

func (w *whopTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.Unix(n, 0)
		if n > 1e12 {
			t = time.UnixMilli(n)
		}
		t = t.UTC()
		w.t = &t
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("expires_at: %w", err)
	}
	t = t.UTC()
	w.t = &t
	return nil
}

// WhopWebhook keeps profile tiers in line with Whop membership events. An active subscription
// grants tier; a cancelled or inactive one drops the profile back to trial.
type WhopWebhook struct {
	repo   Repository
	secret string
	tier   domain.Tier
}

func NewWhopWebhook(repo Repository, secret string, tier domain.Tier) *WhopWebhook {
	if !tier.Valid() || tier == domain.TierTrial {
		tier = domain.TierPro
	}
	return &WhopWebhook{repo: repo, secret: secret, tier: tier}
}

// HandleWhopWebhook verifies the hex HMAC-SHA256 of payload and applies the subscription change.
// Unknown events and users are acknowledged.
func (s *WhopWebhook) HandleWhopWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.secret == "" {
		return NotConfigured
	}
	if !s.validSignature(payload, signature) {
		return InvalidSignature
	}

	var ev whopEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: whop event: %v", domain.InvalidInput, err)
	}

	l := ctxlogger.GetLogger(ctx).With("event_type", ev.Event, "user_id", ev.Data.UserID)
	ctx = ctxlogger.WithLogger(ctx, l)

	var (
		tier    domain.Tier
		expires *time.Time
	)

	switch ev.Event {
	case whopSubscriptionCreated:
		tier, expires = s.tier, ev.Data.ExpiresAt.t
	case whopSubscriptionUpdated:
		tier = domain.TierTrial
		if ev.Data.Status == "active" {
			tier, expires = s.tier, ev.Data.ExpiresAt.t
		}
	case whopSubscriptionCancelled:
		tier = domain.TierTrial
	default:
		l.Info("unhandled whop event")
		return nil
	}

	if ev.Data.UserID == "" {
		return fmt.Errorf("%w: whop event without user_id", domain.InvalidInput)
	}

	err := s.repo.UpdateTier(ctx, ev.Data.UserID, tier, expires)
	if errors.Is(err, domain.ProfileNotFound) {
		l.Warn("no profile for whop member")
		return nil
	}
	if err != nil {
		return fmt.Errorf("update tier: %w", err)
	}

	l.Info("subscription tier updated", "to", tier)
	return nil
}

func (s *WhopWebhook) validSignature(payload []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}
