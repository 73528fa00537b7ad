package web

import (
	"net/http"

	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
)

func GetHealthCheckHandle() httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/ping",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("pong"))
		},
	}
}
