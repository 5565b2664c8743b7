package inmemory

import (
	"context"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/referral"
)

func (s *Store) CountPositionsByStatus(ctx context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, pos := range s.positions {
		if pos.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountPositionsAddedAfter(ctx context.Context, after time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, pos := range s.positions {
		if pos.DateAdded.After(after) {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountCandidatesByStatus(ctx context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, cand := range s.candidates {
		if cand.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountReferrals(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.referrals)), nil
}

func (s *Store) CountReferralsAfter(ctx context.Context, after time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, ref := range s.referrals {
		if ref.ReferralDate.After(after) {
			count++
		}
	}
	return count, nil
}

func (s *Store) SumFeesEarned(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, ref := range s.referrals {
		if ref.Status == referral.StatusHired && ref.FeeEarned != nil {
			sum += *ref.FeeEarned
		}
	}
	return sum, nil
}

func (s *Store) SumFeesEarnedAfter(ctx context.Context, after time.Time) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, ref := range s.referrals {
		if ref.Status == referral.StatusHired && ref.FeeEarned != nil && ref.ReferralDate.After(after) {
			sum += *ref.FeeEarned
		}
	}
	return sum, nil
}

func (s *Store) CountActivitiesByTypeAfter(ctx context.Context, activityType string, after time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, entry := range s.activities {
		if entry.Type == activityType && entry.Timestamp.After(after) {
			count++
		}
	}
	return count, nil
}
