package web

import (
	"net/http"

	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

type assetsResponse struct {
	AssetPacks []domain.AssetPack `json:"assetPacks"`
}

func GenerateAssetsHandle(forge AssetGenerator, ent Entitlements) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/assets",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requireUser(w, r)
			if !ok {
				return
			}

			if !requireTier(w, r, ent, userID, domain.TierPro) {
				return
			}

			var in agent.AssetInput
			if !decodeAndValidate(w, r, &in) {
				return
			}

			packs, err := forge.GenerateAssets(r.Context(), in)
			if err != nil {
				agentError(w, r, "Failed to generate assets", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, assetsResponse{AssetPacks: packs})
		},
	}
}
