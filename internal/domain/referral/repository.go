package referral

import "context"

type Repository interface {
	ListReferrals(ctx context.Context) ([]Referral, error)
	GetReferralByID(ctx context.Context, id int) (*Referral, error)
	CreateReferral(ctx context.Context, ref *Referral) error
	UpdateReferral(ctx context.Context, ref *Referral) error
	DeleteReferral(ctx context.Context, id int) (bool, error)

	// Dependency counts backing the delete guards on candidates and positions.
	CountReferralsByCandidateID(ctx context.Context, candidateID int) (int64, error)
	CountReferralsByPositionID(ctx context.Context, positionID int) (int64, error)
}
