package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/billing"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/trendsvc"
	"github.com/IsaacDSC/trendforge/pkg/cachemanager"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serve(h httpadapter.HttpHandle, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(h.Path, h.Handler)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, path, body, userID string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var res httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestGetHealthCheckHandle(t *testing.T) {
	rec := serve(GetHealthCheckHandle(), httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestTrendsHandles(t *testing.T) {
	expires := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)
	res := trendsvc.TrendsResponse{
		Trends:    []domain.Trend{{ID: "trend-1", Topic: "AI tutors", MomentumScore: 90}},
		Cached:    true,
		ExpiresAt: expires,
	}

	t.Run("Given cached trends, when listed, then they are returned with cache metadata", func(t *testing.T) {
		svc := NewMockTrendService(gomock.NewController(t))
		svc.EXPECT().Trends(gomock.Any()).Return(res, nil)

		rec := serve(GetTrendsHandle(svc), newRequest(http.MethodGet, "/api/v1/trends", "", ""))
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, true, got["cached"])
		assert.Equal(t, "2026-05-01T15:00:00Z", got["expiresAt"])
		assert.Len(t, got["trends"], 1)
	})

	t.Run("Given a failing scout, when listed, then 500", func(t *testing.T) {
		svc := NewMockTrendService(gomock.NewController(t))
		svc.EXPECT().Trends(gomock.Any()).Return(trendsvc.TrendsResponse{}, errors.New("llm down"))

		rec := serve(GetTrendsHandle(svc), newRequest(http.MethodGet, "/api/v1/trends", "", ""))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch trends", decodeError(t, rec).Error)
	})

	t.Run("Given the refresh action, when posted, then the cache is refreshed", func(t *testing.T) {
		svc := NewMockTrendService(gomock.NewController(t))
		refreshed := res
		refreshed.Cached, refreshed.Refreshed = false, true
		svc.EXPECT().Refresh(gomock.Any()).Return(refreshed, nil)

		rec := serve(RefreshTrendsHandle(svc), newRequest(http.MethodPost, "/api/v1/trends/refresh", `{"action":"refresh"}`, ""))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"refreshed":true`)
	})

	for _, body := range []string{`{"action":"purge"}`, `{}`, `not json`} {
		t.Run("Given body "+body+", when posted, then Invalid action", func(t *testing.T) {
			svc := NewMockTrendService(gomock.NewController(t))

			rec := serve(RefreshTrendsHandle(svc), newRequest(http.MethodPost, "/api/v1/trends/refresh", body, ""))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid action", decodeError(t, rec).Error)
		})
	}
}

func TestGenerateIdeasHandle(t *testing.T) {
	body := `{"trendSummary":{"topic":"AI tutors"},"goal":"first $1k","productType":"Course"}`
	dossier := domain.Dossier{
		TrendAnalysis:   domain.TrendAnalysis{SuperiorityVector: "done-for-you"},
		ProductConcepts: []domain.ProductConcept{{ProductName: "A"}, {ProductName: "B"}, {ProductName: "C"}},
		Agent:           agent.NameAthena,
	}

	t.Run("Given a cache, when ideas are requested, then generation goes through Once keyed by input hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := NewMockIdeaGenerator(ctrl)
		cc := cachemanager.NewMockCache(ctrl)

		var in agent.IdeaInput
		require.NoError(t, json.Unmarshal([]byte(body), &in))
		hash, err := cachemanager.Hash(in)
		require.NoError(t, err)

		key := cachemanager.Key("trendforge:ideas:" + hash)
		cc.EXPECT().Key(ideasCachePrefix, hash).Return(key)
		cc.EXPECT().GetDefaultTTL().Return(time.Hour)
		cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), time.Hour, gomock.Any()).
			DoAndReturn(func(ctx context.Context, key cachemanager.Key, value any, ttl time.Duration, fn cachemanager.Fn) error {
				v, err := fn(ctx)
				if err != nil {
					return err
				}
				*value.(*domain.Dossier) = v.(domain.Dossier)
				return nil
			})
		gen.EXPECT().GenerateDossier(gomock.Any(), in).Return(dossier, nil)

		rec := serve(GenerateIdeasHandle(gen, cc), newRequest(http.MethodPost, "/api/v1/ideas", body, ""))
		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Dossier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.ProductConcepts, 3)
		assert.Equal(t, "done-for-you", got.TrendAnalysis.SuperiorityVector)
	})

	t.Run("Given no cache, when ideas are requested, then the generator is called directly", func(t *testing.T) {
		gen := NewMockIdeaGenerator(gomock.NewController(t))
		gen.EXPECT().GenerateDossier(gomock.Any(), gomock.Any()).Return(dossier, nil)

		rec := serve(GenerateIdeasHandle(gen, nil), newRequest(http.MethodPost, "/api/v1/ideas", body, ""))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Given missing fields, when ideas are requested, then validation fails", func(t *testing.T) {
		gen := NewMockIdeaGenerator(gomock.NewController(t))

		rec := serve(GenerateIdeasHandle(gen, nil), newRequest(http.MethodPost, "/api/v1/ideas", `{"goal":"x"}`, ""))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		res := decodeError(t, rec)
		assert.Equal(t, "Validation failed", res.Error)
		assert.Contains(t, res.Details, "IdeaInput.trendSummary: required")
		assert.Contains(t, res.Details, "IdeaInput.productType: required")
	})

	t.Run("Given an invalid llm answer, when ideas are requested, then 500", func(t *testing.T) {
		gen := NewMockIdeaGenerator(gomock.NewController(t))
		gen.EXPECT().GenerateDossier(gomock.Any(), gomock.Any()).Return(domain.Dossier{}, domain.InvalidLLMOutput)

		rec := serve(GenerateIdeasHandle(gen, nil), newRequest(http.MethodPost, "/api/v1/ideas", body, ""))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate Dominance Dossier", decodeError(t, rec).Error)
	})

	t.Run("Given input rejected by the agent, when ideas are requested, then 400", func(t *testing.T) {
		gen := NewMockIdeaGenerator(gomock.NewController(t))
		gen.EXPECT().GenerateDossier(gomock.Any(), gomock.Any()).Return(domain.Dossier{}, domain.InvalidInput)

		rec := serve(GenerateIdeasHandle(gen, nil), newRequest(http.MethodPost, "/api/v1/ideas", body, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompileBlueprintHandle(t *testing.T) {
	body := `{"selectedConcept":{"productName":"Exam Sprint OS"},"selectedAngle":{"angleType":"Urgency"},"goal":"launch"}`
	blueprint := domain.Blueprint{
		WhopProductPayload: &domain.WhopProductPayload{ProductName: "Exam Sprint OS", SuggestedPriceUSD: 197},
		MarketingAssets:    &domain.MarketingAssets{LaunchAnnouncementHeadline: "Live"},
		Agent:              agent.NameHermes,
	}

	tests := []struct {
		name       string
		userID     string
		body       string
		setupMocks func(c *MockBlueprintCompiler, e *MockEntitlements)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing user",
			body:       body,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication required",
		},
		{
			name:       "missing concept",
			userID:     "user-1",
			body:       `{"selectedAngle":{"angleType":"Urgency"}}`,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Validation failed",
		},
		{
			name:   "usage limit reached",
			userID: "user-1",
			body:   body,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {
				e.EXPECT().EnsureProfile(gomock.Any(), "user-1", "ada@example.com").Return(domain.Profile{ID: "user-1"}, nil)
				e.EXPECT().CheckUsage(gomock.Any(), "user-1", domain.FeatureBlueprint).Return(domain.UsageResult{
					Reason:  domain.ReasonUsageLimit,
					Message: "You've reached your 3 blueprint limit for trial tier. Upgrade to continue.",
					Limit:   3,
				}, nil)
			},
			wantStatus: http.StatusPaymentRequired,
			wantError:  "You've reached your 3 blueprint limit for trial tier. Upgrade to continue.",
		},
		{
			name:   "compiled and usage recorded",
			userID: "user-1",
			body:   body,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {
				e.EXPECT().EnsureProfile(gomock.Any(), "user-1", "ada@example.com").Return(domain.Profile{ID: "user-1"}, nil)
				e.EXPECT().CheckUsage(gomock.Any(), "user-1", domain.FeatureBlueprint).Return(domain.UsageResult{Allowed: true, Remaining: 2, Limit: 3}, nil)
				c.EXPECT().CompileBlueprint(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in agent.CompileInput) (domain.Blueprint, error) {
					assert.Equal(t, "Exam Sprint OS", in.SelectedConcept.ProductName)
					assert.Equal(t, "launch", in.Goal)
					return blueprint, nil
				})
				e.EXPECT().RecordUsage(gomock.Any(), "user-1", domain.FeatureBlueprint).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "usage record failure still delivers",
			userID: "user-1",
			body:   body,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {
				e.EXPECT().EnsureProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Profile{ID: "user-1"}, nil)
				e.EXPECT().CheckUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UsageResult{Allowed: true}, nil)
				c.EXPECT().CompileBlueprint(gomock.Any(), gomock.Any()).Return(blueprint, nil)
				e.EXPECT().RecordUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "compile failure does not consume usage",
			userID: "user-1",
			body:   body,
			setupMocks: func(c *MockBlueprintCompiler, e *MockEntitlements) {
				e.EXPECT().EnsureProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Profile{ID: "user-1"}, nil)
				e.EXPECT().CheckUsage(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.UsageResult{Allowed: true}, nil)
				c.EXPECT().CompileBlueprint(gomock.Any(), gomock.Any()).Return(domain.Blueprint{}, domain.InvalidLLMOutput)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to compile blueprint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := NewMockBlueprintCompiler(ctrl)
			e := NewMockEntitlements(ctrl)
			tt.setupMocks(c, e)

			req := newRequest(http.MethodPost, "/api/v1/blueprints/compile", tt.body, tt.userID)
			req.Header.Set(HeaderUserEmail, "ada@example.com")

			rec := serve(CompileBlueprintHandle(c, e), req)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}
		})
	}
}

func TestGenerateAssetsHandle(t *testing.T) {
	body := `{"productName":"Exam Sprint OS","productDescription":"Pass fast","marketingAngles":[{"angleType":"Urgency"}]}`

	t.Run("Given a trial user, when assets are requested, then 403 with the tier check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := NewMockAssetGenerator(ctrl)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), "user-1", domain.TierPro).Return(domain.NewTierCheckResult(domain.TierTrial, domain.TierPro), nil)

		rec := serve(GenerateAssetsHandle(f, e), newRequest(http.MethodPost, "/api/v1/assets", body, "user-1"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "This feature requires pro tier. Your current tier: trial.", decodeError(t, rec).Error)
	})

	t.Run("Given a pro user, when assets are requested, then the packs are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := NewMockAssetGenerator(ctrl)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), "user-1", domain.TierPro).Return(domain.NewTierCheckResult(domain.TierPro, domain.TierPro), nil)
		f.EXPECT().GenerateAssets(gomock.Any(), gomock.Any()).Return([]domain.AssetPack{{AngleType: "Urgency", VisualMetaphor: "rocket"}}, nil)

		rec := serve(GenerateAssetsHandle(f, e), newRequest(http.MethodPost, "/api/v1/assets", body, "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"visualMetaphor":"rocket"`)
	})

	t.Run("Given no angles, when assets are requested, then validation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.TierCheckResult{Allowed: true}, nil)

		rec := serve(GenerateAssetsHandle(NewMockAssetGenerator(ctrl), e),
			newRequest(http.MethodPost, "/api/v1/assets", `{"productName":"x","productDescription":"y","marketingAngles":[]}`, "user-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPublishHandle(t *testing.T) {
	body := `{"store_id":"store_1","product_name":"Exam Sprint OS","content":"# M1","price_usd":"$197"}`

	t.Run("Given a pro user, when publishing, then the job is queued for that user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := NewMockPublishQueue(ctrl)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), "user-1", domain.TierPro).Return(domain.TierCheckResult{Allowed: true}, nil)
		q.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req domain.PublishRequest) (string, error) {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, domain.PriceUSD(197), req.PriceUSD)
			return "task-9", nil
		})

		rec := serve(PublishHandle(q, e), newRequest(http.MethodPost, "/api/v1/publish", body, "user-1"))
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"task_id":"task-9","status":"queued"}`, rec.Body.String())
	})

	t.Run("Given a missing store, when publishing, then validation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.TierCheckResult{Allowed: true}, nil)

		rec := serve(PublishHandle(NewMockPublishQueue(ctrl), e),
			newRequest(http.MethodPost, "/api/v1/publish", `{"product_name":"x"}`, "user-1"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "PublishRequest.store_id: required")
	})

	t.Run("Given a store id with path characters, when publishing, then validation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.TierCheckResult{Allowed: true}, nil)

		rec := serve(PublishHandle(NewMockPublishQueue(ctrl), e),
			newRequest(http.MethodPost, "/api/v1/publish", `{"store_id":"s/../../companies/x","product_name":"x"}`, "user-1"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "PublishRequest.store_id: excludesall")
	})

	t.Run("Given a broker failure, when publishing, then 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := NewMockPublishQueue(ctrl)
		e := NewMockEntitlements(ctrl)
		e.EXPECT().CheckTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.TierCheckResult{Allowed: true}, nil)
		q.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))

		rec := serve(PublishHandle(q, e), newRequest(http.MethodPost, "/api/v1/publish", body, "user-1"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetEntitlementHandle(t *testing.T) {
	t.Run("Given required and feature, when checked, then tier and usage are reported", func(t *testing.T) {
		e := NewMockEntitlements(gomock.NewController(t))
		e.EXPECT().CheckTier(gomock.Any(), "user-1", domain.TierAgency).Return(domain.NewTierCheckResult(domain.TierPro, domain.TierAgency), nil)
		e.EXPECT().CheckUsage(gomock.Any(), "user-1", domain.FeatureMedia).Return(domain.UsageResult{Allowed: true, Remaining: 1, Limit: 5}, nil)

		rec := serve(GetEntitlementHandle(e), newRequest(http.MethodGet, "/api/v1/users/user-1/entitlement?required=Agency&feature=media", "", "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)

		var got entitlementResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.TierCheck.Allowed)
		assert.Equal(t, domain.TierPro, got.TierCheck.CurrentTier)
		require.NotNil(t, got.Usage)
		assert.Equal(t, 1, got.Usage.Remaining)
	})

	t.Run("Given no required tier, when checked, then pro is assumed", func(t *testing.T) {
		e := NewMockEntitlements(gomock.NewController(t))
		e.EXPECT().CheckTier(gomock.Any(), "user-1", domain.TierPro).Return(domain.NewTierCheckResult(domain.TierPro, domain.TierPro), nil)

		rec := serve(GetEntitlementHandle(e), newRequest(http.MethodGet, "/api/v1/users/user-1/entitlement", "", "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"usage"`)
	})

	t.Run("Given an unknown tier, when checked, then 400", func(t *testing.T) {
		e := NewMockEntitlements(gomock.NewController(t))

		rec := serve(GetEntitlementHandle(e), newRequest(http.MethodGet, "/api/v1/users/user-1/entitlement?required=gold", "", "user-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Given another user, when checked, then 403 and nothing is read", func(t *testing.T) {
		e := NewMockEntitlements(gomock.NewController(t))

		rec := serve(GetEntitlementHandle(e), newRequest(http.MethodGet, "/api/v1/users/user-2/entitlement?feature=media", "", "user-1"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Given no caller, when checked, then 401", func(t *testing.T) {
		e := NewMockEntitlements(gomock.NewController(t))

		rec := serve(GetEntitlementHandle(e), newRequest(http.MethodGet, "/api/v1/users/user-1/entitlement", "", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListGenerationsHandle(t *testing.T) {
	t.Run("Given the owner, when listing, then the limit is forwarded", func(t *testing.T) {
		h := NewMockGenerationHistory(gomock.NewController(t))
		h.EXPECT().ListGenerations(gomock.Any(), "user-1", 5).Return([]domain.Generation{{ProductName: "A", Status: domain.GenerationSuccess}}, nil)

		rec := serve(ListGenerationsHandle(h), newRequest(http.MethodGet, "/api/v1/users/user-1/generations?limit=5", "", "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"product_name":"A"`)
	})

	t.Run("Given no history, when listing, then an empty array", func(t *testing.T) {
		h := NewMockGenerationHistory(gomock.NewController(t))
		h.EXPECT().ListGenerations(gomock.Any(), "user-1", 0).Return(nil, nil)

		rec := serve(ListGenerationsHandle(h), newRequest(http.MethodGet, "/api/v1/users/user-1/generations", "", "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"generations":[]}`, rec.Body.String())
	})

	t.Run("Given another user, when listing, then 403", func(t *testing.T) {
		h := NewMockGenerationHistory(gomock.NewController(t))

		rec := serve(ListGenerationsHandle(h), newRequest(http.MethodGet, "/api/v1/users/user-2/generations", "", "user-1"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Given a bad limit, when listing, then 400", func(t *testing.T) {
		h := NewMockGenerationHistory(gomock.NewController(t))

		rec := serve(ListGenerationsHandle(h), newRequest(http.MethodGet, "/api/v1/users/user-1/generations?limit=ten", "", "user-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStripeWebhookHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "processed", wantStatus: http.StatusOK},
		{name: "bad signature", err: billing.InvalidSignature, wantStatus: http.StatusBadRequest},
		{name: "not configured", err: billing.NotConfigured, wantStatus: http.StatusInternalServerError},
		{name: "store failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMockBilling(gomock.NewController(t))
			b.EXPECT().HandleWebhook(gomock.Any(), []byte(`{"id":"evt_1"}`), "t=1,v1=abc").Return(tt.err)

			req := newRequest(http.MethodPost, "/api/v1/webhooks/stripe", `{"id":"evt_1"}`, "")
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")

			rec := serve(StripeWebhookHandle(b), req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"received":true}`, rec.Body.String())
			}
		})
	}
}

func TestBillingPortalHandle(t *testing.T) {
	t.Run("Given a customer, when a portal is requested, then its url is returned", func(t *testing.T) {
		b := NewMockBilling(gomock.NewController(t))
		b.EXPECT().PortalURL(gomock.Any(), "ada@example.com").Return("https://billing.stripe.com/p/1", nil)

		rec := serve(BillingPortalHandle(b), newRequest(http.MethodPost, "/api/v1/billing/portal", `{"email":"ada@example.com"}`, ""))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://billing.stripe.com/p/1"}`, rec.Body.String())
	})

	t.Run("Given no customer, when a portal is requested, then 404", func(t *testing.T) {
		b := NewMockBilling(gomock.NewController(t))
		b.EXPECT().PortalURL(gomock.Any(), "ghost@example.com").Return("", billing.CustomerNotFound)

		rec := serve(BillingPortalHandle(b), newRequest(http.MethodPost, "/api/v1/billing/portal", `{"email":"ghost@example.com"}`, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Given a malformed email, when a portal is requested, then 400", func(t *testing.T) {
		b := NewMockBilling(gomock.NewController(t))

		rec := serve(BillingPortalHandle(b), newRequest(http.MethodPost, "/api/v1/billing/portal", `{"email":"nope"}`, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWhopWebhookHandle(t *testing.T) {
	payload := `{"event":"subscription.created","data":{"user_id":"user-1"}}`

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "Given a processed event, when posted, then 200", wantCode: http.StatusOK},
		{name: "Given a bad signature, when posted, then 401", err: billing.InvalidSignature, wantCode: http.StatusUnauthorized},
		{name: "Given no secret, when posted, then 500", err: billing.NotConfigured, wantCode: http.StatusInternalServerError},
		{name: "Given a malformed event, when posted, then 400", err: fmt.Errorf("%w: no user", domain.InvalidInput), wantCode: http.StatusBadRequest},
		{name: "Given a store failure, when posted, then 500", err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockWhopWebhook(gomock.NewController(t))
			svc.EXPECT().HandleWhopWebhook(gomock.Any(), []byte(payload), "abc123").Return(tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/whop", strings.NewReader(payload))
			req.Header.Set("x-whop-signature", "abc123")

			rec := serve(WhopWebhookHandle(svc), req)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"message":"Webhook processed"}`, rec.Body.String())
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes(Dependencies{})

	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		paths = append(paths, r.Path)
	}

	assert.Contains(t, paths, "POST /api/v1/blueprints/compile")
	assert.Contains(t, paths, "POST /api/v1/webhooks/stripe")
	assert.Contains(t, paths, "POST /api/v1/webhooks/whop")
	assert.Len(t, paths, 12)

	mux := http.NewServeMux()
	assert.NotPanics(t, func() {
		for _, r := range routes {
			mux.HandleFunc(r.Path, r.Handler)
		}
	})
}
