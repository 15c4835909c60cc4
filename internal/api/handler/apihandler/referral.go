package apihandler

import (
	"net/http"
	"referral/pkg/controller"
	"referral/pkg/logger"

	"go.uber.org/zap"
)

// SubmitReferral handles POST /api/refer.
func (h Handler) SubmitReferral(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, err := DecodeSubmission(r)
	if err != nil {
		h.NewError(ctx, w, err, controller.UnhandledErrorMessage)

		return
	}

	ref, err := h.deps.Referral.Submit(ctx, sub)
	if err != nil {
		h.NewError(ctx, w, err, MsgSubmitError)

		return
	}

	logger.Info(ctx, "referral submitted", zap.Int64("referralID", int64(ref.ID)))
	controller.WriteJSON(w, http.StatusCreated, EncodeSubmitted(ref))
}

// ReferralStats handles GET /api/referral-stats.
func (h Handler) ReferralStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.deps.Referral.Stats(ctx)
	if err != nil {
		h.NewError(ctx, w, err, MsgStatsError)

		return
	}

	controller.WriteJSON(w, http.StatusOK, EncodeStats(stats))
}

// Health handles GET /health.
func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.deps.Referral.Health(ctx); err != nil {
		logger.Warn(ctx, "health check failed", zap.Error(err))
		controller.WriteJSON(w, http.StatusServiceUnavailable, encodeStatus("unavailable"))

		return
	}

	controller.WriteJSON(w, http.StatusOK, encodeStatus("ok"))
}
