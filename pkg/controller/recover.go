package controller

import (
	"errors"
	"net/http"
	"referral/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover is the catch-all for the request pipeline: a panic anywhere
// below it is logged with its stack and answered with a generic 500.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(p)
			}

			logger.Error(r.Context(), "Unhandled error", zap.Any("panic", p), zap.Stack("stack"))
			WriteError(w, http.StatusInternalServerError, UnhandledErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
