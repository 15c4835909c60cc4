// Package controller contains the HTTP middlewares and response helpers shared
// by every route of the referral API.
//
// Middlewares:
//   - WithLogger: request-scoped logger, request ID and access log.
//   - WithRecover: turns panics into a generic 500 response.
//   - WithCORS: permissive CORS headers and OPTIONS preflight handling.
//   - WithSecurityHeaders: hardening headers for API responses.
//   - WithBodyLimit: caps request body size.
//   - RateLimiter.Middleware: per-client request budget.
//   - HTTPMetrics.Middleware: Prometheus request counters and latencies.
//
// Helpers:
//   - WriteJSON / WriteError: JSON responses encoded with jx.
//   - PprofMux: net/http/pprof handlers.
package controller
