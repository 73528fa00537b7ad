package publishq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/whop"
	"github.com/IsaacDSC/trendforge/pkg/asynqsvc"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=handler.go -destination=mock_handler.go -package=publishq
type WhopAPI interface {
	CreateProduct(ctx context.Context, storeID string, p whop.Product) (whop.ProductResult, error)
	CreateDraftPost(ctx context.Context, communityID string, p whop.Post) (whop.PostResult, error)
}

type Repository interface {
	RecordGeneration(ctx context.Context, g domain.Generation) error
}

var _ WhopAPI = (*whop.Client)(nil)

type Handler struct {
	whop  WhopAPI
	repo  Repository
	clock clock.Clock
}

func NewHandler(w WhopAPI, repo Repository, clk clock.Clock) *Handler {
	return &Handler{whop: w, repo: repo, clock: clk}
}

func (h *Handler) AsynqHandle() asynqsvc.AsynqHandle {
	return asynqsvc.AsynqHandle{
		TaskType: TaskType,
		Handler:  h.Handle,
	}
}

// Handle creates the product, then the optional draft announcement, and records the generation.
// A failed product creation is retried by asynq and only recorded as failed on the last attempt.
func (h *Handler) Handle(ctx context.Context, task *asynq.Task) error {
	l := ctxlogger.GetLogger(ctx)

	var req domain.PublishRequest
	if err := json.Unmarshal(task.Payload(), &req); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	product, err := h.whop.CreateProduct(ctx, req.StoreID, whop.Product{
		Name:        req.ProductName,
		Description: req.Description,
		Content:     req.Content,
		PriceUSD:    int(req.PriceUSD),
		Tags:        req.Tags,
	})
	if errors.Is(err, whop.InvalidID) {
		h.record(ctx, req, "", domain.GenerationFailed)
		return fmt.Errorf("create whop product: %w: %w", err, asynq.SkipRetry)
	}
	if err != nil {
		if lastAttempt(ctx) {
			h.record(ctx, req, "", domain.GenerationFailed)
		}
		return fmt.Errorf("create whop product: %w", err)
	}

	result := domain.PublishResult{ProductID: product.ProductID, ProductURL: product.ProductURL}

	if req.CommunityID != "" && req.MarketingAssets != nil {
		post, err := h.whop.CreateDraftPost(ctx, req.CommunityID, whop.Post{
			Title:   req.MarketingAssets.LaunchAnnouncementHeadline,
			Content: req.MarketingAssets.LaunchAnnouncementBody,
		})
		if err != nil {
			l.Warn("draft post failed, product was published", "product_id", product.ProductID, "error", err)
		} else {
			result.PostID, result.PostURL = post.PostID, post.PostURL
		}
	}

	h.record(ctx, req, product.ProductURL, domain.GenerationSuccess)

	l.Info("product published", "user_id", req.UserID, "product_id", result.ProductID, "product_url", result.ProductURL, "post_id", result.PostID)

	return nil
}

func (h *Handler) record(ctx context.Context, req domain.PublishRequest, url string, status domain.GenerationStatus) {
	if req.UserID == "" {
		return
	}

	g := domain.Generation{
		ID:                 uuid.New(),
		UserID:             req.UserID,
		Trend:              req.Trend,
		ProductName:        req.ProductName,
		ProductDescription: req.Description,
		ProductURL:         url,
		Status:             status,
		CreatedAt:          h.clock.Now().UTC(),
	}

	if err := h.repo.RecordGeneration(ctx, g); err != nil {
		ctxlogger.GetLogger(ctx).Error("could not record generation", "user_id", req.UserID, "status", status, "error", err)
	}
}

func lastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
