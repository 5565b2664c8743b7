package dashboard

import (
	"context"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Stats reads whatever the store currently contains; no snapshot isolation
// beyond single-statement consistency.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	openPositions, err := s.repo.CountPositionsByStatus(ctx, position.StatusOpen)
	if err != nil {
		return Stats{}, err
	}

	activeCandidates, err := s.repo.CountCandidatesByStatus(ctx, candidate.StatusLooking)
	if err != nil {
		return Stats{}, err
	}

	referralsMade, err := s.repo.CountReferrals(ctx)
	if err != nil {
		return Stats{}, err
	}

	feesEarned, err := s.repo.SumFeesEarned(ctx)
	if err != nil {
		return Stats{}, err
	}

	oneMonthAgo := s.now().AddDate(0, -1, 0)

	newPositions, err := s.repo.CountPositionsAddedAfter(ctx, oneMonthAgo)
	if err != nil {
		return Stats{}, err
	}

	newReferrals, err := s.repo.CountReferralsAfter(ctx, oneMonthAgo)
	if err != nil {
		return Stats{}, err
	}

	newFees, err := s.repo.SumFeesEarnedAfter(ctx, oneMonthAgo)
	if err != nil {
		return Stats{}, err
	}

	// Candidates carry no creation timestamp; the candidate_added audit
	// entries in the window stand in for candidate growth.
	newCandidates, err := s.repo.CountActivitiesByTypeAfter(ctx, activity.TypeCandidateAdded, oneMonthAgo)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		OpenPositions:    openPositions,
		ActiveCandidates: activeCandidates,
		ReferralsMade:    referralsMade,
		FeesEarned:       feesEarned,
		MonthlyChange: MonthlyChange{
			OpenPositions:    newPositions,
			ActiveCandidates: newCandidates,
			ReferralsMade:    newReferrals,
			FeesEarned:       newFees,
		},
	}, nil
}
