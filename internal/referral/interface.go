package referral

import (
	"context"
	"referral/pkg/domain"
)

//go:generate mockgen -package mockreferral -source=interface.go -destination=mock/mockreferral.go *
type Service interface {
	Submit(ctx context.Context, sub Submission) (*domain.Referral, error)
	Stats(ctx context.Context) (*domain.ReferralStats, error)
	Health(ctx context.Context) error
}
