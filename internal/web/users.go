package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

type entitlementResponse struct {
	TierCheck domain.TierCheckResult `json:"tier_check"`
	Usage     *domain.UsageResult    `json:"usage,omitempty"`
}

// requireOwner returns the {id} path value when it is the acting user, otherwise writes a 401 or 403.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID, ok := requireUser(w, r)
	if !ok {
		return "", false
	}

	if r.PathValue("id") != callerID {
		httpadapter.Error(w, r, http.StatusForbidden, "Forbidden", nil)
		return "", false
	}

	return callerID, true
}

// GetEntitlementHandle reports to its owner whether the user meets ?required= (default pro) and, with ?feature=, its usage.
func GetEntitlementHandle(ent Entitlements) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/users/{id}/entitlement",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requireOwner(w, r)
			if !ok {
				return
			}
			ctx := r.Context()

			required := domain.TierPro
			if q := r.URL.Query().Get("required"); q != "" {
				t, err := domain.ParseTier(q)
				if err != nil {
					httpadapter.Error(w, r, http.StatusBadRequest, "Invalid tier", err)
					return
				}
				required = t
			}

			res, err := ent.CheckTier(ctx, userID, required)
			if err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to check subscription", err)
				return
			}

			out := entitlementResponse{TierCheck: res}

			if q := r.URL.Query().Get("feature"); q != "" {
				feature, err := domain.ParseFeature(q)
				if err != nil {
					httpadapter.Error(w, r, http.StatusBadRequest, "Invalid feature", err)
					return
				}

				usage, err := ent.CheckUsage(ctx, userID, feature)
				if err != nil {
					httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to check usage", err)
					return
				}
				out.Usage = &usage
			}

			httpadapter.JSON(w, r, http.StatusOK, out)
		},
	}
}

type generationsResponse struct {
	Generations []domain.Generation `json:"generations"`
}

// ListGenerationsHandle returns the caller's own publish history.
func ListGenerationsHandle(history GenerationHistory) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/users/{id}/generations",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requireOwner(w, r)
			if !ok {
				return
			}

			limit := 0
			if q := r.URL.Query().Get("limit"); q != "" {
				n, err := strconv.Atoi(q)
				if err != nil {
					httpadapter.Error(w, r, http.StatusBadRequest, "Invalid limit", err)
					return
				}
				limit = n
			}

			gens, err := history.ListGenerations(r.Context(), userID, limit)
			if err != nil && !errors.Is(err, domain.ProfileNotFound) {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to list generations", err)
				return
			}
			if gens == nil {
				gens = []domain.Generation{}
			}

			httpadapter.JSON(w, r, http.StatusOK, generationsResponse{Generations: gens})
		},
	}
}
