package web

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/cachemanager"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

const ideasCachePrefix = "ideas"

// GenerateIdeasHandle serves dossiers from redis keyed by a hash of the input; cc may be nil to disable caching.
func GenerateIdeasHandle(gen IdeaGenerator, cc cachemanager.Cache) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/ideas",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var in agent.IdeaInput
			if !decodeAndValidate(w, r, &in) {
				return
			}

			dossier, err := generateDossier(ctx, gen, cc, in)
			if err != nil {
				agentError(w, r, "Failed to generate Dominance Dossier", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, dossier)
		},
	}
}

func generateDossier(ctx context.Context, gen IdeaGenerator, cc cachemanager.Cache, in agent.IdeaInput) (domain.Dossier, error) {
	if cc == nil {
		return gen.GenerateDossier(ctx, in)
	}

	hash, err := cachemanager.Hash(in)
	if err != nil {
		ctxlogger.GetLogger(ctx).Warn("could not hash idea input, skipping cache", "error", err)
		return gen.GenerateDossier(ctx, in)
	}

	var dossier domain.Dossier
	err = cc.Once(ctx, cc.Key(ideasCachePrefix, hash), &dossier, cc.GetDefaultTTL(), func(ctx context.Context) (any, error) {
		return gen.GenerateDossier(ctx, in)
	})

	return dossier, err
}
