package trendsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/ttlcache"
)

// GlobalKey is the single cache slot shared by every caller.
const GlobalKey = "global"

//go:generate mockgen -source=service.go -destination=mock_service.go -package=trendsvc
type TrendFetcher interface {
	FetchTrends(ctx context.Context) ([]domain.Trend, error)
}

type TrendsResponse struct {
	Trends    []domain.Trend `json:"trends"`
	Cached    bool           `json:"cached"`
	Refreshed bool           `json:"refreshed,omitempty"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

type Service struct {
	cache   *ttlcache.Cache[string, []domain.Trend]
	fetcher TrendFetcher
}

func NewService(cache *ttlcache.Cache[string, []domain.Trend], fetcher TrendFetcher) *Service {
	return &Service{cache: cache, fetcher: fetcher}
}

// Trends serves the cached list while it is fresh and regenerates it once per TTL window.
func (s *Service) Trends(ctx context.Context) (TrendsResponse, error) {
	entry, cached, err := s.cache.GetOrProduce(ctx, GlobalKey, s.fetcher.FetchTrends)
	if err != nil {
		return TrendsResponse{}, fmt.Errorf("get trends: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("serving trends", "cached", cached, "count", len(entry.Value))

	return TrendsResponse{
		Trends:    entry.Value,
		Cached:    cached,
		ExpiresAt: entry.ExpiresAt,
	}, nil
}

// Refresh drops every cached entry and repopulates the global slot.
func (s *Service) Refresh(ctx context.Context) (TrendsResponse, error) {
	s.cache.Clear()

	entry, err := s.cache.Refresh(ctx, GlobalKey, s.fetcher.FetchTrends)
	if err != nil {
		return TrendsResponse{}, fmt.Errorf("refresh trends: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("trends refreshed", "count", len(entry.Value))

	return TrendsResponse{
		Trends:    entry.Value,
		Refreshed: true,
		ExpiresAt: entry.ExpiresAt,
	}, nil
}
