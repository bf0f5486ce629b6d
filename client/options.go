package client

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/linux-techtips/cordyceps/logger"
)

// tracerName identifies spans produced by this package.
const tracerName = "github.com/linux-techtips/cordyceps/client"

// settings holds client configuration shared by all payload types.
type settings struct {
	httpClient *http.Client
	headers    map[string]string
	auth       *AuthConfig
	userAgent  string
	requestID  func() string
	tracer     trace.Tracer
	log        *logger.Logger
}

// Option configures a client at construction time.
type Option func(*settings)

// WithHTTPClient replaces the underlying HTTP client. The default carries no
// global timeout: a streamed response outlives any fixed deadline, so
// cancellation belongs to the request context.
func WithHTTPClient(h *http.Client) Option {
	return func(s *settings) { s.httpClient = h }
}

// WithHeaders sets default headers applied to every request.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) { s.headers = headers }
}

// WithAuth overrides the default bearer credential scheme.
func WithAuth(auth *AuthConfig) Option {
	return func(s *settings) { s.auth = auth }
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// WithTracing wraps each Send in a span from the global tracer provider.
// The span covers the exchange up to the first byte, not stream consumption.
func WithTracing() Option {
	return func(s *settings) { s.tracer = otel.Tracer(tracerName) }
}

// WithLogger enables debug logging of request lifecycle events.
// Without it the client is silent.
func WithLogger(log *logger.Logger) Option {
	return func(s *settings) { s.log = log }
}
