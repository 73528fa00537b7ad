package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
)

const maxLoggedBody = 2048

var redactedHeaders = []string{"Authorization", "Stripe-Signature", "Cookie"}

// HTTPClientTransport logs every outbound request with the logger found on the request context.
type HTTPClientTransport struct {
	Transport http.RoundTripper
	LogBodies bool
}

func NewHTTPClientTransport(transport http.RoundTripper, logBodies bool) *HTTPClientTransport {
	if transport == nil {
		transport = &http.Transport{
			DisableKeepAlives:   false,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &HTTPClientTransport{
		Transport: transport,
		LogBodies: logBodies,
	}
}

func (t *HTTPClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())

	if id := ctxlogger.RequestID(req.Context()); id != "" && req.Header.Get("X-Request-ID") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", id)
	}

	attrs := []any{
		"method", req.Method,
		"url", req.URL.Redacted(),
		"headers", redact(req.Header),
	}

	if t.LogBodies && req.Body != nil && req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			b, _ := io.ReadAll(io.LimitReader(body, maxLoggedBody))
			body.Close()
			attrs = append(attrs, "body", string(b))
		}
	}

	logger.Debug("HTTP client request started", attrs...)

	resp, err := t.Transport.RoundTrip(req)

	elapsed := time.Since(start)

	if err != nil {
		logger.Error("HTTP client request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"error", err.Error(),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	attrs = []any{
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status_code", resp.StatusCode,
		"elapsed_time", elapsed,
	}

	if t.LogBodies && resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.Error("Failed to read response body", "error", err)
		}
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		if len(bodyBytes) > maxLoggedBody {
			bodyBytes = bodyBytes[:maxLoggedBody]
		}
		attrs = append(attrs, "response_body", string(bodyBytes))
	}

	logger.Info("HTTP client request completed", attrs...)

	return resp, nil
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for _, k := range redactedHeaders {
		if out.Get(k) != "" {
			out.Set(k, "[REDACTED]")
		}
	}
	return out
}

// NewHTTPClientWithLogging returns a client whose transport logs requests and responses.
func NewHTTPClientWithLogging(timeout time.Duration, logBodies bool) *http.Client {
	return &http.Client{
		Transport: NewHTTPClientTransport(nil, logBodies),
		Timeout:   timeout,
	}
}
