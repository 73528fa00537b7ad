package domain

import (
	"fmt"
	"strings"
)

// Tier is a subscription entitlement level. Tiers are totally ordered: trial < pro < agency.
type Tier string

const (
	TierTrial  Tier = "trial"
	TierPro    Tier = "pro"
	TierAgency Tier = "agency"
)

var tierRank = map[Tier]int{
	TierTrial:  0,
	TierPro:    1,
	TierAgency: 2,
}

func (t Tier) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// rank of an unknown tier sits below trial, so it never satisfies a requirement.
func (t Tier) rank() int {
	r, ok := tierRank[t]
	if !ok {
		return -1
	}
	return r
}

// ParseTier normalizes s into a known tier. Unknown values fail closed to TierTrial and
// are reported through the error so callers can log them.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return TierTrial, fmt.Errorf("%w: %q", InvalidTier, s)
	}
	return t, nil
}

// CheckTier allows iff current ranks at or above required.
func CheckTier(current, required Tier) bool {
	if !required.Valid() {
		return false
	}
	return current.rank() >= required.rank()
}

type TierCheckResult struct {
	Allowed      bool   `json:"allowed"`
	CurrentTier  Tier   `json:"current_tier"`
	RequiredTier Tier   `json:"required_tier"`
	Message      string `json:"message,omitempty"`
}

func NewTierCheckResult(current, required Tier) TierCheckResult {
	res := TierCheckResult{
		Allowed:      CheckTier(current, required),
		CurrentTier:  current,
		RequiredTier: required,
	}

	if !res.Allowed {
		res.Message = fmt.Sprintf("This feature requires %s tier. Your current tier: %s.", required, current)
	}

	return res
}

// Unlimited marks a limit with no cap.
const Unlimited = -1

type TierLimits struct {
	Blueprints       int `json:"blueprints"`
	Campaigns        int `json:"campaigns"`
	MediaGenerations int `json:"media_generations"`
	TrialDays        int `json:"trial_days,omitempty"`
}

var tierLimits = map[Tier]TierLimits{
	TierTrial:  {Blueprints: 3, Campaigns: 0, MediaGenerations: 0, TrialDays: 7},
	TierPro:    {Blueprints: Unlimited, Campaigns: Unlimited, MediaGenerations: 5},
	TierAgency: {Blueprints: Unlimited, Campaigns: Unlimited, MediaGenerations: Unlimited},
}

// Limits for unknown tiers are the trial limits.
func (t Tier) Limits() TierLimits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[TierTrial]
}

type TierPrice struct {
	MonthlyUSD float64 `json:"monthly_usd"`
	Name       string  `json:"name"`
}

var tierPricing = map[Tier]TierPrice{
	TierTrial:  {MonthlyUSD: 0, Name: "Trial"},
	TierPro:    {MonthlyUSD: 19.99, Name: "Pro"},
	TierAgency: {MonthlyUSD: 79, Name: "Agency"},
}

func (t Tier) Pricing() TierPrice {
	if p, ok := tierPricing[t]; ok {
		return p
	}
	return tierPricing[TierTrial]
}

func (t Tier) DisplayName() string {
	switch t {
	case TierPro:
		return "Pro ($19.99/mo)"
	case TierAgency:
		return "Agency ($79/mo)"
	default:
		return "Trial (7 Days)"
	}
}
