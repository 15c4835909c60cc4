// Package referral implements the referral workflows: accepting a submission,
// storing it and notifying the referee, and reporting statistics.
package referral

import (
	"context"
	"fmt"
	"referral/pkg/domain"
	"referral/pkg/logger"
	"referral/pkg/mailer"
	"referral/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultRecentLimit is the number of referrals listed by Stats.
	DefaultRecentLimit = 5

	NotificationSubject = "You've been referred!"

	instrumentationName = "referral"
)

// Options tune the service.
type Options struct {
	// RecentLimit caps the recent referrals returned by Stats. Zero means DefaultRecentLimit.
	RecentLimit uint
}

// Deps are the collaborators of the service.
type Deps struct {
	Storage storage.Storage
	Mailer  mailer.Sender
	// MeterProvider receives the service counters. Nil disables them.
	MeterProvider metric.MeterProvider
	// TracerProvider creates spans around store and mail calls. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

type service struct {
	options Options
	storage storage.Storage
	mailer  mailer.Sender
	tracer  trace.Tracer

	submitted    metric.Int64Counter
	emailsSent   metric.Int64Counter
	emailsFailed metric.Int64Counter
}

// New creates a Service. It fails only when the meter provider refuses to
// create the counters.
func New(deps Deps, options Options) (Service, error) {
	if options.RecentLimit == 0 {
		options.RecentLimit = DefaultRecentLimit
	}
	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	submitted, err := meter.Int64Counter("referrals_submitted",
		metric.WithDescription("Referrals accepted and stored."))
	if err != nil {
		return nil, fmt.Errorf("could not create submitted counter: %w", err)
	}
	emailsSent, err := meter.Int64Counter("referral_emails_sent",
		metric.WithDescription("Referral notification emails delivered to the relay."))
	if err != nil {
		return nil, fmt.Errorf("could not create emails sent counter: %w", err)
	}
	emailsFailed, err := meter.Int64Counter("referral_emails_failed",
		metric.WithDescription("Referral notification emails that could not be sent."))
	if err != nil {
		return nil, fmt.Errorf("could not create emails failed counter: %w", err)
	}

	return &service{
		options:      options,
		storage:      deps.Storage,
		mailer:       deps.Mailer,
		tracer:       tp.Tracer(instrumentationName),
		submitted:    submitted,
		emailsSent:   emailsSent,
		emailsFailed: emailsFailed,
	}, nil
}

// NotificationFor builds the email telling the referee about ref.
func NotificationFor(ref domain.Referral) mailer.Message {
	return mailer.Message{
		To:      ref.RefereeEmail,
		Subject: NotificationSubject,
		Body:    fmt.Sprintf("%s has referred you for the %s course.", ref.ReferrerName, ref.Course),
	}
}

// Submit validates sub, stores it and emails the referee. Once validation
// passes the store and send run to completion even if ctx is canceled.
// A failed email is logged and counted; the stored referral is still returned.
func (s *service) Submit(ctx context.Context, sub Submission) (*domain.Referral, error) {
	if err := Validate(sub); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(context.WithoutCancel(ctx), "referral.Submit")
	defer span.End()

	stored, err := s.storage.CreateReferral(ctx, sub.Referral())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not store referral")

		return nil, fmt.Errorf("could not store referral: %w", err)
	}
	span.SetAttributes(attribute.Int64("referral.id", int64(stored.ID)))
	s.submitted.Add(ctx, 1)

	if err := s.notify(ctx, *stored); err != nil {
		s.emailsFailed.Add(ctx, 1)
		logger.Error(ctx, "could not send referral notification",
			zap.Int64("referralID", int64(stored.ID)), zap.Error(err))
	} else {
		s.emailsSent.Add(ctx, 1)
	}

	return stored, nil
}

func (s *service) notify(ctx context.Context, ref domain.Referral) error {
	ctx, span := s.tracer.Start(ctx, "referral.notify")
	defer span.End()

	if err := s.mailer.Send(ctx, NotificationFor(ref)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not send email")

		return fmt.Errorf("could not send notification: %w", err)
	}

	return nil
}

// Stats returns the referral count and the most recent referrals. Both are
// read from one snapshot so the count never lags behind the list.
func (s *service) Stats(ctx context.Context) (*domain.ReferralStats, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Stats")
	defer span.End()

	var stats domain.ReferralStats
	err := s.storage.WithTx(ctx, storage.TxOptions{ReadOnly: true}, func(tx storage.AllStorage) error {
		total, err := tx.ReferralCount(ctx)
		if err != nil {
			return fmt.Errorf("could not count referrals: %w", err)
		}
		recent, err := tx.RecentReferrals(ctx, s.options.RecentLimit)
		if err != nil {
			return fmt.Errorf("could not list recent referrals: %w", err)
		}
		stats = domain.ReferralStats{Total: total, Recent: recent}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not read stats")

		return nil, fmt.Errorf("could not get referral stats: %w", err)
	}

	return &stats, nil
}

// Health reports whether the store is reachable.
func (s *service) Health(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("store is unreachable: %w", err)
	}

	return nil
}
