package postgres

import (
	"referral/pkg/domain"
	"time"
)

type PgReferral struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	ReferrerName  string `db:"referrer_name"`
	ReferrerEmail string `db:"referrer_email"`
	RefereeName   string `db:"referee_name"`
	RefereeEmail  string `db:"referee_email"`
	Course        string `db:"course"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReferral) ToDomain() *domain.Referral {
	return &domain.Referral{
		ID:            domain.ReferralID(p.ID),
		ReferrerName:  p.ReferrerName,
		ReferrerEmail: p.ReferrerEmail,
		RefereeName:   p.RefereeName,
		RefereeEmail:  p.RefereeEmail,
		Course:        p.Course,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgReferral) FromDomain(ref domain.Referral) {
	*p = PgReferral{
		ID:            int64(ref.ID),
		ReferrerName:  ref.ReferrerName,
		ReferrerEmail: ref.ReferrerEmail,
		RefereeName:   ref.RefereeName,
		RefereeEmail:  ref.RefereeEmail,
		Course:        ref.Course,
		CreatedAt:     ref.CreatedAt,
	}
}

// PgReferralSummary selects only the columns exposed by statistics.
type PgReferralSummary struct {
	ReferrerName string    `db:"referrer_name"`
	Course       string    `db:"course"`
	CreatedAt    time.Time `db:"created_at"`
}

func pgSummariesToDomain(rows []PgReferralSummary) []domain.ReferralSummary {
	out := make([]domain.ReferralSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ReferralSummary{
			ReferrerName: r.ReferrerName,
			Course:       r.Course,
			CreatedAt:    r.CreatedAt,
		})
	}

	return out
}
