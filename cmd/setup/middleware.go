package setup

import (
	"context"
	"net/http"
	"time"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/IsaacDSC/trendforge/pkg/logs"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/cors"
)

const headerRequestID = "X-Request-ID"

func AsynqLogger(h asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		start := time.Now()

		taskID, _ := asynq.GetTaskID(ctx)
		retried, _ := asynq.GetRetryCount(ctx)
		logger := logs.With(
			"task_type", t.Type(),
			"task_id", taskID,
			"retry", retried,
			"request_id", uuid.New().String(),
		)

		logger.Info("Start processing")

		ctx = ctxlogger.WithLogger(ctx, logger)

		err := h.ProcessTask(ctx, t)
		if err != nil {
			logger.Error("Error processing task", "error", err, "elapsed_time", time.Since(start))
			return err
		}

		logger.Info("Finished processing", "elapsed_time", time.Since(start))

		return nil
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggerMiddleware puts a request-scoped logger and request id on the context and logs the outcome.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(headerRequestID, requestID)

		logger := logs.With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"request_id", requestID,
		)

		ctx := ctxlogger.WithLogger(r.Context(), logger)
		ctx = ctxlogger.WithRequestID(ctx, requestID)
		r = r.WithContext(ctx)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request completed", "status", rec.status, "elapsed_time", time.Since(start))
	})
}

// CORSMiddleware allows every origin when allowedOrigins is empty.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
			"X-User-ID",
			"X-User-Email",
			headerRequestID,
		},
		ExposedHeaders: []string{headerRequestID},
		MaxAge:         86400,
	})

	return c.Handler(next)
}
