package web

import (
	"net/http"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

type publishResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// PublishHandle queues the Whop publish job; the product is created by the worker.
func PublishHandle(queue PublishQueue, ent Entitlements) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/publish",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			userID, ok := requireUser(w, r)
			if !ok {
				return
			}

			if !requireTier(w, r, ent, userID, domain.TierPro) {
				return
			}

			var req domain.PublishRequest
			if !decodeAndValidate(w, r, &req) {
				return
			}
			req.UserID = userID

			taskID, err := queue.Enqueue(r.Context(), req)
			if err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to queue publish job", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusAccepted, publishResponse{TaskID: taskID, Status: "queued"})
		},
	}
}
