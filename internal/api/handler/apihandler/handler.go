// Package apihandler serves the referral HTTP API: it decodes requests,
// calls the referral service and shapes JSON responses and errors.
package apihandler

import (
	"context"
	"net/http"
	"referral/internal/referral"
	"referral/pkg/controller"
	"referral/pkg/logger"
	"referral/pkg/serrors"

	"go.uber.org/zap"
)

const (
	MsgSubmitted   = "Referral submitted successfully"
	MsgSubmitError = "An error occurred while processing your request"
	MsgStatsError  = "An error occurred while fetching referral statistics"
)

type Deps struct {
	Referral referral.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError writes err as {"error": message}. Client errors carry their own
// message; server errors are logged and answered with fallback.
func (h Handler) NewError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	status := serrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed",
			zap.String("kind", serrors.KindOf(err).Error()), zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	controller.WriteError(w, status, serrors.PublicMessage(err, fallback))
}
