package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/IsaacDSC/trendforge/internal/billing"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

const maxWebhookBody = 1 << 16

func StripeWebhookHandle(svc Billing) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/webhooks/stripe",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
			if err != nil {
				httpadapter.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
				return
			}

			err = svc.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
			switch {
			case errors.Is(err, billing.InvalidSignature):
				httpadapter.Error(w, r, http.StatusBadRequest, "Webhook signature verification failed", err)
				return
			case errors.Is(err, billing.NotConfigured):
				httpadapter.Error(w, r, http.StatusInternalServerError, "Webhook configuration error", err)
				return
			case err != nil:
				httpadapter.Error(w, r, http.StatusInternalServerError, "Webhook handler failed", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, map[string]bool{"received": true})
		},
	}
}

func WhopWebhookHandle(svc WhopWebhook) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/webhooks/whop",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
			if err != nil {
				httpadapter.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
				return
			}

			err = svc.HandleWhopWebhook(r.Context(), payload, r.Header.Get(billing.WhopSignatureHeader))
			switch {
			case errors.Is(err, billing.InvalidSignature):
				httpadapter.Error(w, r, http.StatusUnauthorized, "Invalid signature", err)
				return
			case errors.Is(err, billing.NotConfigured):
				httpadapter.Error(w, r, http.StatusInternalServerError, "Webhook not configured", err)
				return
			case errors.Is(err, domain.InvalidInput):
				httpadapter.Error(w, r, http.StatusBadRequest, "Invalid webhook payload", err)
				return
			case err != nil:
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to process webhook", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, map[string]string{"message": "Webhook processed"})
		},
	}
}

type portalRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func BillingPortalHandle(svc Billing) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/billing/portal",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			var req portalRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}

			u, err := svc.PortalURL(r.Context(), req.Email)
			switch {
			case errors.Is(err, billing.CustomerNotFound):
				httpadapter.Error(w, r, http.StatusNotFound, "No Stripe customer found for this email", err)
				return
			case errors.Is(err, domain.InvalidInput):
				httpadapter.Error(w, r, http.StatusBadRequest, "Email is required", err)
				return
			case err != nil:
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to create portal session", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, map[string]string{"url": u})
		},
	}
}
