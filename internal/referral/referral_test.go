package referral_test

import (
	"context"
	"errors"
	"referral/internal/referral"
	"referral/pkg/domain"
	"referral/pkg/mailer"
	"referral/pkg/serrors"
	"referral/pkg/storage"
	"testing"
	"time"

	mockmailer "referral/pkg/mailer/mock"
	mockstorage "referral/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type testDeps struct {
	storage *mockstorage.MockStorage
	mailer  *mockmailer.MockSender
	reader  *sdkmetric.ManualReader
}

func newTestService(t *testing.T) (*gomock.Controller, testDeps, referral.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		storage: mockstorage.NewMockStorage(ctrl),
		mailer:  mockmailer.NewMockSender(ctrl),
		reader:  sdkmetric.NewManualReader(),
	}
	s, err := referral.New(referral.Deps{
		Storage:       deps.storage,
		Mailer:        deps.mailer,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(deps.reader)),
	}, referral.Options{})
	require.NoError(t, err)

	return ctrl, deps, s
}

// counters collects the current value of every int64 counter by name.
func counters(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}

	return out
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), storage.TxOptions{ReadOnly: true}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ storage.TxOptions, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storedFrom(sub referral.Submission, id domain.ReferralID) *domain.Referral {
	ref := sub.Referral()
	ref.ID = id
	ref.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	return &ref
}

func TestService_Submit_StoresAndNotifies(t *testing.T) {
	_, deps, s := newTestService(t)
	sub := validSubmission()

	deps.storage.EXPECT().CreateReferral(gomock.Any(), sub.Referral()).Return(storedFrom(sub, 1), nil)
	deps.mailer.EXPECT().Send(gomock.Any(), mailer.Message{
		To:      "bob@x.com",
		Subject: "You've been referred!",
		Body:    "Alice has referred you for the Go course.",
	}).Return(nil)

	ref, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.EqualValues(t, 1, ref.ID)
	require.Equal(t, "Bob", ref.RefereeName)

	c := counters(t, deps.reader)
	require.EqualValues(t, 1, c["referrals_submitted"])
	require.EqualValues(t, 1, c["referral_emails_sent"])
	require.Zero(t, c["referral_emails_failed"])
}

func TestService_Submit_InvalidSkipsStoreAndMail(t *testing.T) {
	_, _, s := newTestService(t)

	sub := validSubmission()
	sub.Course = ""
	_, err := s.Submit(context.Background(), sub)
	require.ErrorIs(t, err, serrors.ErrMissingField)

	sub = validSubmission()
	sub.RefereeEmail = "bob"
	_, err = s.Submit(context.Background(), sub)
	require.ErrorIs(t, err, serrors.ErrInvalidEmailFormat)
}

func TestService_Submit_StoreFailureSkipsMail(t *testing.T) {
	_, deps, s := newTestService(t)

	deps.storage.EXPECT().CreateReferral(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrStoreUnavailable, errors.New("dial tcp"), "insert"))

	_, err := s.Submit(context.Background(), validSubmission())
	require.ErrorIs(t, err, serrors.ErrStoreUnavailable)
	require.Zero(t, counters(t, deps.reader)["referrals_submitted"])
}

func TestService_Submit_MailFailureStillSucceeds(t *testing.T) {
	_, deps, s := newTestService(t)
	sub := validSubmission()

	deps.storage.EXPECT().CreateReferral(gomock.Any(), gomock.Any()).Return(storedFrom(sub, 7), nil)
	deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.Wrap(serrors.ErrDeliveryFailed, errors.New("535 auth"), "send"))

	ref, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.EqualValues(t, 7, ref.ID)

	c := counters(t, deps.reader)
	require.EqualValues(t, 1, c["referrals_submitted"])
	require.EqualValues(t, 1, c["referral_emails_failed"])
	require.Zero(t, c["referral_emails_sent"])
}

func TestService_Submit_IgnoresClientCancellation(t *testing.T) {
	_, deps, s := newTestService(t)
	sub := validSubmission()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps.storage.EXPECT().CreateReferral(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, ref domain.Referral) (*domain.Referral, error) {
			require.NoError(t, ctx.Err())

			return storedFrom(sub, 3), nil
		})
	deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ mailer.Message) error {
			require.NoError(t, ctx.Err())

			return nil
		})

	_, err := s.Submit(ctx, sub)
	require.NoError(t, err)
}

func TestService_Stats(t *testing.T) {
	ctrl, deps, s := newTestService(t)

	recent := []domain.ReferralSummary{
		{ReferrerName: "Carol", Course: "Rust", CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{ReferrerName: "Alice", Course: "Go", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	expectWithTx(t, ctrl, deps.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReferralCount(gomock.Any()).Return(int64(12), nil)
		tx.EXPECT().RecentReferrals(gomock.Any(), uint(referral.DefaultRecentLimit)).Return(recent, nil)
	})

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 12, stats.Total)
	require.Equal(t, recent, stats.Recent)
}

func TestService_Stats_CustomLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s, err := referral.New(referral.Deps{Storage: st, Mailer: mockmailer.NewMockSender(ctrl)},
		referral.Options{RecentLimit: 2})
	require.NoError(t, err)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReferralCount(gomock.Any()).Return(int64(0), nil)
		tx.EXPECT().RecentReferrals(gomock.Any(), uint(2)).Return([]domain.ReferralSummary{}, nil)
	})

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Total)
	require.Empty(t, stats.Recent)
}

func TestService_Stats_StoreFailure(t *testing.T) {
	ctrl, deps, s := newTestService(t)

	expectWithTx(t, ctrl, deps.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReferralCount(gomock.Any()).
			Return(int64(0), serrors.Wrap(serrors.ErrStoreUnavailable, errors.New("timeout"), "count"))
	})

	_, err := s.Stats(context.Background())
	require.ErrorIs(t, err, serrors.ErrStoreUnavailable)
}

func TestService_Health(t *testing.T) {
	_, deps, s := newTestService(t)

	deps.storage.EXPECT().Ping(gomock.Any()).Return(nil)
	require.NoError(t, s.Health(context.Background()))

	deps.storage.EXPECT().Ping(gomock.Any()).Return(serrors.Wrap(serrors.ErrStoreUnavailable, errors.New("down"), "ping"))
	require.ErrorIs(t, s.Health(context.Background()), serrors.ErrStoreUnavailable)
}

func TestNotificationFor(t *testing.T) {
	msg := referral.NotificationFor(domain.Referral{
		ReferrerName: "Zoë",
		RefereeEmail: "bob@x.com",
		Course:       "Data & ML",
	})
	require.Equal(t, "bob@x.com", msg.To)
	require.Equal(t, referral.NotificationSubject, msg.Subject)
	require.Equal(t, "Zoë has referred you for the Data & ML course.", msg.Body)
}
