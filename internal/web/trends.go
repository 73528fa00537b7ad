package web

import (
	"net/http"

	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

func GetTrendsHandle(svc TrendService) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/trends",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			res, err := svc.Trends(r.Context())
			if err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to fetch trends", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, res)
		},
	}
}

type refreshRequest struct {
	Action string `json:"action"`
}

func RefreshTrendsHandle(svc TrendService) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/trends/refresh",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			var req refreshRequest
			if err := httpadapter.Decode(w, r, &req); err != nil || req.Action != "refresh" {
				httpadapter.Error(w, r, http.StatusBadRequest, "Invalid action", err)
				return
			}

			res, err := svc.Refresh(r.Context())
			if err != nil {
				httpadapter.Error(w, r, http.StatusInternalServerError, "Failed to refresh trends", err)
				return
			}

			httpadapter.JSON(w, r, http.StatusOK, res)
		},
	}
}
