package setup

import (
	"net"
	"net/http"
	"time"

	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/IsaacDSC/trendforge/pkg/httpadapter"
	"github.com/IsaacDSC/trendforge/pkg/logs"
)

// StartHttpServer starts serving routes in the background; the caller owns shutdown.
func StartHttpServer(conf cfg.Config, routes []httpadapter.HttpHandle) *http.Server {
	mux := http.NewServeMux()
	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}

	handler := CORSMiddleware(LoggerMiddleware(mux), conf.Server.AllowedOrigins...)

	server := &http.Server{
		Addr:              net.JoinHostPort("", conf.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// agent calls wait on the LLM for up to two minutes
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logs.Info("[*] Starting API server", "addr", server.Addr)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Error("API server error", "error", err)
		}
	}()

	return server
}
