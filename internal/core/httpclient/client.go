package httpclient

import (
	"net/http"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound call to the backend or a payment
// provider. 5xx answers are logged as warnings; they are what trips the
// backend circuit breaker.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := lrt.Proxied.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("upstream", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		logger.Get().Error("Outbound request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields, zap.Int("status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Get().Warn("Outbound request returned server error", fields...)
	} else {
		logger.Get().Debug("Outbound request completed", fields...)
	}

	return resp, nil
}

// NewClient returns an http.Client with logging middleware and no proxy beyond the environment.
func NewClient(timeout time.Duration) *http.Client {
	return NewProxiedClient(timeout, proxy.Settings{})
}

// NewProxiedClient returns an http.Client with logging middleware routed through the given proxy.
func NewProxiedClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = settings.TransportProxy()

	return &http.Client{
		Transport: &LoggingRoundTripper{Proxied: transport},
		Timeout:   timeout,
	}
}
