package profilestore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/google/uuid"
)

// MemStore keeps everything in process memory. It backs DB_DRIVER=memory and the tests.
type MemStore struct {
	mu          sync.RWMutex
	profiles    map[string]domain.Profile
	usageLogs   []domain.UsageLog
	generations []domain.Generation
	now         func() time.Time
	tag         string
}

var _ Repository = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]domain.Profile),
		now:      time.Now,
		tag:      "mem_store",
	}
}

func (ms *MemStore) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	p, ok := ms.profiles[id]
	if !ok {
		ctxlogger.GetLogger(ctx).Warn("Profile not found", "user_id", id, "tag", ms.tag)
		return domain.Profile{}, domain.ProfileNotFound
	}

	return p, nil
}

func (ms *MemStore) FindByEmail(ctx context.Context, email string) (domain.Profile, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, p := range ms.profiles {
		if strings.EqualFold(p.Email, email) {
			return p, nil
		}
	}

	return domain.Profile{}, domain.ProfileNotFound
}

func (ms *MemStore) CreateProfile(ctx context.Context, p domain.Profile) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.profiles[p.ID]; ok {
		return domain.ProfileExists
	}

	if p.Email != "" {
		for _, existing := range ms.profiles {
			if strings.EqualFold(existing.Email, p.Email) {
				return domain.ProfileExists
			}
		}
	}

	ms.profiles[p.ID] = p
	return nil
}

func (ms *MemStore) UpdateTier(ctx context.Context, id string, tier domain.Tier, subscriptionExpiresAt *time.Time) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p, ok := ms.profiles[id]
	if !ok {
		return domain.ProfileNotFound
	}

	p.Tier = tier
	p.SubscriptionExpiresAt = subscriptionExpiresAt
	p.UpdatedAt = ms.now()
	ms.profiles[id] = p

	return nil
}

func (ms *MemStore) IncrementUsage(ctx context.Context, id string, feature domain.Feature) (domain.Profile, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	p, ok := ms.profiles[id]
	if !ok {
		return domain.Profile{}, domain.ProfileNotFound
	}

	switch feature {
	case domain.FeatureBlueprint, domain.FeatureLaunch:
		p.BlueprintsUsed++
	case domain.FeatureCampaign:
		p.CampaignsUsed++
	case domain.FeatureMedia:
		p.MediaGenerations++
	default:
		return domain.Profile{}, domain.UnknownFeature
	}

	now := ms.now()
	p.UpdatedAt = now
	ms.profiles[id] = p

	ms.usageLogs = append(ms.usageLogs, domain.UsageLog{
		ID:        uuid.New(),
		UserID:    id,
		Feature:   feature,
		CreatedAt: now,
	})

	return p, nil
}

func (ms *MemStore) RecordGeneration(ctx context.Context, g domain.Generation) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = ms.now()
	}

	ms.generations = append(ms.generations, g)
	return nil
}

// ListGenerations returns the newest generations of userID first.
func (ms *MemStore) ListGenerations(ctx context.Context, userID string, limit int) ([]domain.Generation, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []domain.Generation
	for _, g := range ms.generations {
		if g.UserID == userID {
			out = append(out, g)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if l := listLimit(limit); len(out) > l {
		out = out[:l]
	}

	return out, nil
}

// UsageLogs returns a copy of the usage history of userID.
func (ms *MemStore) UsageLogs(userID string) []domain.UsageLog {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var out []domain.UsageLog
	for _, u := range ms.usageLogs {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out
}
