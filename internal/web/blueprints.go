package web

import (
	"net/http"

	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

// CompileBlueprintHandle consumes one blueprint from the caller's allowance per successful compile.
func CompileBlueprintHandle(compiler BlueprintCompiler, ent Entitlements) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/blueprints/compile",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := requireUser(w, r)
			if !ok {
				return
			}

			var in agent.CompileInput
			if !decodeAndValidate(w, r, &in) {
				return
			}

			if _, err := ent.EnsureProfile(ctx, userID, r.Header.Get(HeaderUserEmail)); err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to load profile", err)
				return
			}

			usage, err := ent.CheckUsage(ctx, userID, domain.FeatureBlueprint)
			if err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to check usage", err)
				return
			}
			if !usage.Allowed {
				httpadapter.ErrorWithDetails(w, r, http.StatusPaymentRequired, usage.Message, usage)
				return
			}

			blueprint, err := compiler.CompileBlueprint(ctx, in)
			if err != nil {
				agentError(w, r, "Failed to compile blueprint", err)
				return
			}

			if err := ent.RecordUsage(ctx, userID, domain.FeatureBlueprint); err != nil {
				ctxlogger.GetLogger(ctx).Error("blueprint delivered but usage not recorded", "user_id", userID, "error", err)
			}

			httpadapter.JSON(w, r, http.StatusOK, blueprint)
		},
	}
}
