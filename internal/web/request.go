package web

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
	"github.com/go-playground/validator/v10"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate writes a 400 and returns false when the body is not valid JSON or fails validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpadapter.Decode(w, r, v); err != nil {
		httpadapter.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
		return false
	}

	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fe.Namespace()+": "+fe.Tag())
			}
			httpadapter.ErrorWithDetails(w, r, http.StatusBadRequest, "Validation failed", fields)
			return false
		}
		httpadapter.Error(w, r, http.StatusBadRequest, "Validation failed", err)
		return false
	}

	return true
}

// requireUser returns the acting user id or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if id == "" {
		httpadapter.Error(w, r, http.StatusUnauthorized, "Authentication required", nil)
		return "", false
	}
	return id, true
}

// requireTier writes a 403 with the check result unless userID holds at least required.
func requireTier(w http.ResponseWriter, r *http.Request, ent Entitlements, userID string, required domain.Tier) bool {
	res, err := ent.CheckTier(r.Context(), userID, required)
	if err != nil {
		httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to check subscription", err)
		return false
	}

	if !res.Allowed {
		httpadapter.ErrorWithDetails(w, r, http.StatusForbidden, res.Message, res)
		return false
	}

	return true
}

// agentError maps pipeline failures: bad input is the caller's fault, anything else is upstream.
func agentError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.InvalidInput) {
		httpadapter.Error(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}
	httpadapter.Error(w, r, http.StatusInternalServerError, msg, err)
}
