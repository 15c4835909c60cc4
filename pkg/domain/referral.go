package domain

import "time"

// ReferralID is the store-assigned identifier of a referral.
type ReferralID int64

// Referral links a referrer to a referee for a named course.
// It is created once per accepted submission and never updated afterwards.
type Referral struct {
	// ID is assigned by the store on insert.
	ID ReferralID `json:"id"`

	ReferrerName  string `json:"referrerName"`
	ReferrerEmail string `json:"referrerEmail"`
	RefereeName   string `json:"refereeName"`
	RefereeEmail  string `json:"refereeEmail"`
	Course        string `json:"course"`

	// CreatedAt is set by the store at insert time.
	CreatedAt time.Time `json:"createdAt"`
}

// ReferralSummary is the public projection of a referral used by statistics.
// The referee and the identifier are intentionally not part of it.
type ReferralSummary struct {
	ReferrerName string    `json:"referrerName"`
	Course       string    `json:"course"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReferralStats aggregates the total number of referrals with the most
// recently created ones, newest first.
type ReferralStats struct {
	Total  int64
	Recent []ReferralSummary
}
