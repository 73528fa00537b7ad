package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	InvalidSignature = errors.New("webhook signature verification failed")
	NotConfigured    = errors.New("webhook configuration error")
	CustomerNotFound = errors.New("no stripe customer found for this email")
)

const (
	eventCheckoutCompleted   = "checkout.session.completed"
	eventSubscriptionUpdated = "customer.subscription.updated"
	eventSubscriptionDeleted = "customer.subscription.deleted"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=billing
type Repository interface {
	FindByEmail(ctx context.Context, email string) (domain.Profile, error)
	UpdateTier(ctx context.Context, id string, tier domain.Tier, subscriptionExpiresAt *time.Time) error
}

type Config struct {
	WebhookSecret string
	PricePro      string
	PriceAgency   string
	AppURL        string
}

type Service struct {
	repo   Repository
	lookup Lookup
	cfg    Config
}

func NewService(repo Repository, lookup Lookup, cfg Config) *Service {
	return &Service{repo: repo, lookup: lookup, cfg: cfg}
}

// HandleWebhook verifies the signed payload and applies subscription changes to the matching profile.
// Events that carry nothing to apply return nil so Stripe stops redelivering them.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.cfg.WebhookSecret == "" {
		return NotConfigured
	}
	if signature == "" {
		return InvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.cfg.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", InvalidSignature, err)
	}

	l := ctxlogger.GetLogger(ctx).With("event_id", event.ID, "event_type", event.Type)
	ctx = ctxlogger.WithLogger(ctx, l)

	switch event.Type {
	case eventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("unmarshal checkout session: %w", err)
		}
		return s.checkoutCompleted(ctx, &session)
	case eventSubscriptionUpdated, eventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("unmarshal subscription: %w", err)
		}
		return s.subscriptionChanged(ctx, string(event.Type), &sub)
	default:
		l.Debug("stripe event ignored")
		return nil
	}
}

func (s *Service) checkoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	l := ctxlogger.GetLogger(ctx)

	if session.Mode != stripe.CheckoutSessionModeSubscription || session.Subscription == nil {
		l.Debug("checkout without subscription ignored", "mode", session.Mode)
		return nil
	}

	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		l.Warn("checkout session without customer email")
		return nil
	}

	sub, err := s.lookup.Subscription(ctx, session.Subscription.ID)
	if err != nil {
		return fmt.Errorf("retrieve subscription %s: %w", session.Subscription.ID, err)
	}

	tier, ok := s.TierForSubscription(sub)
	if !ok {
		l.Warn("subscription price is not mapped to a tier", "subscription_id", sub.ID)
		return nil
	}

	return s.apply(ctx, email, tier, periodEnd(sub))
}

func (s *Service) subscriptionChanged(ctx context.Context, eventType string, sub *stripe.Subscription) error {
	l := ctxlogger.GetLogger(ctx)

	var (
		tier    domain.Tier
		expires *time.Time
	)

	switch {
	case eventType == eventSubscriptionDeleted,
		sub.Status == stripe.SubscriptionStatusCanceled,
		sub.Status == stripe.SubscriptionStatusUnpaid:
		tier = domain.TierTrial
	case sub.Status == stripe.SubscriptionStatusActive, sub.Status == stripe.SubscriptionStatusTrialing:
		var ok bool
		if tier, ok = s.TierForSubscription(sub); !ok {
			l.Warn("subscription price is not mapped to a tier", "subscription_id", sub.ID)
			return nil
		}
		expires = periodEnd(sub)
	default:
		l.Debug("subscription status ignored", "status", sub.Status)
		return nil
	}

	email, err := s.customerEmail(ctx, sub.Customer)
	if err != nil {
		return err
	}
	if email == "" {
		l.Warn("subscription customer has no email", "subscription_id", sub.ID)
		return nil
	}

	return s.apply(ctx, email, tier, expires)
}

func (s *Service) customerEmail(ctx context.Context, c *stripe.Customer) (string, error) {
	if c == nil || c.ID == "" {
		return "", nil
	}
	if c.Email != "" {
		return c.Email, nil
	}

	customer, err := s.lookup.Customer(ctx, c.ID)
	if err != nil {
		return "", fmt.Errorf("retrieve customer %s: %w", c.ID, err)
	}
	if customer.Deleted {
		return "", nil
	}

	return customer.Email, nil
}

func (s *Service) apply(ctx context.Context, email string, tier domain.Tier, expires *time.Time) error {
	l := ctxlogger.GetLogger(ctx)

	p, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ProfileNotFound) {
		l.Warn("no profile for stripe customer", "email", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("find profile by email: %w", err)
	}

	if err := s.repo.UpdateTier(ctx, p.ID, tier, expires); err != nil {
		return fmt.Errorf("update tier: %w", err)
	}

	l.Info("subscription tier updated", "user_id", p.ID, "from", p.Tier, "to", tier)
	return nil
}

// TierForSubscription maps the first item's price to a paid tier.
func (s *Service) TierForSubscription(sub *stripe.Subscription) (domain.Tier, bool) {
	if sub == nil || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return "", false
	}

	switch sub.Items.Data[0].Price.ID {
	case "":
		return "", false
	case s.cfg.PricePro:
		return domain.TierPro, true
	case s.cfg.PriceAgency:
		return domain.TierAgency, true
	default:
		return "", false
	}
}

// PortalURL opens a billing-portal session for the Stripe customer registered with email.
func (s *Service) PortalURL(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.InvalidInput)
	}

	c, err := s.lookup.CustomerByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	u, err := s.lookup.PortalSession(ctx, c.ID, strings.TrimRight(s.cfg.AppURL, "/")+"/settings/billing")
	if err != nil {
		return "", fmt.Errorf("create portal session: %w", err)
	}

	return u, nil
}

func periodEnd(sub *stripe.Subscription) *time.Time {
	if sub.CurrentPeriodEnd <= 0 {
		return nil
	}
	t := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	return &t
}
