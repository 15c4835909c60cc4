// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the referral service.
package api

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"referral/internal/api/handler/apihandler"
	"referral/internal/config"
	"referral/pkg/controller"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI document of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath = "/api/specs/v1.yaml"
	docsPath = "/api/docs/"
)

// Options holds configuration for the HTTP server and its middlewares.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":3001".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes caps the size of request bodies.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts net/http/pprof under /debug/pprof/.
	EnablePprof bool
	// RateLimitMax requests are allowed per client per RateLimitWindow on /api/ routes.
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
		RateLimitMax:      cfg.RateLimit.Max,
		RateLimitWindow:   cfg.RateLimit.Window,
	}
}

type Deps struct {
	apihandler.Deps

	// Registry receives the HTTP metrics and is served at MetricsPath.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - the referral API under /api/ with security headers and rate limiting
// - the health check at /health
// - the Prometheus metrics endpoint (MetricsPath)
// - the embedded OpenAPI document and Swagger UI
// - pprof endpoints when enabled
// Every request goes through access logging, request metrics, panic
// recovery, CORS and the body size limit, in that order.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Referral == nil || deps.Registry == nil {
		return nil, errors.New("api server needs a referral service and a metrics registry")
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{
		Registry: deps.Registry,
	}))

	// api specs file and swagger playground
	mux.HandleFunc("GET "+specPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle(docsPath, v5emb.New("Referral Service", specPath, docsPath))

	// api
	h := apihandler.New(deps.Deps)
	limiter := controller.NewRateLimiter(opts.RateLimitMax, opts.RateLimitWindow)
	mux.Handle("POST /api/refer", limiter.Middleware(http.HandlerFunc(h.SubmitReferral)))
	mux.Handle("GET /api/referral-stats", limiter.Middleware(http.HandlerFunc(h.ReferralStats)))
	mux.HandleFunc("GET /health", h.Health)

	// pprof
	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// swagger ui relies on inline scripts the CSP would block
	handler := controller.WithSecurityHeaders(mux, docsPath)
	handler = controller.WithBodyLimit(opts.MaxBodyBytes, handler)
	handler = controller.WithCORS(handler)
	handler = controller.WithRecover(handler)
	handler = controller.NewHTTPMetrics(deps.Registry).Middleware(handler)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
