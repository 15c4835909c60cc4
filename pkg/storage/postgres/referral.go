package postgres

import (
	"context"
	"referral/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	referralsTable = "referrals"
)

func (p *PgSQL) CreateReferral(ctx context.Context, ref domain.Referral) (*domain.Referral, error) {
	var row PgReferral
	row.FromDomain(ref)

	var stored PgReferral
	if _, err := p.Builder.Insert(referralsTable).
		Rows(row).
		Returning(&PgReferral{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, classify(err, "could not store referral into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ReferralCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(referralsTable).CountContext(ctx)
	if err != nil {
		return 0, classify(err, "could not count referrals in pg")
	}

	return count, nil
}

// RecentReferrals orders by id as well so rows inserted within the same
// timestamp still come back newest first.
func (p *PgSQL) RecentReferrals(ctx context.Context, limit uint) ([]domain.ReferralSummary, error) {
	if limit == 0 {
		return []domain.ReferralSummary{}, nil
	}

	var rows []PgReferralSummary
	if err := p.Builder.From(referralsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, classify(err, "could not list recent referrals from pg")
	}

	return pgSummariesToDomain(rows), nil
}
