package inmemory

import (
	"context"
	"sort"

	"github.com/yurykissin/RecrutTrack/internal/domain/referral"
)

func (s *Store) ListReferrals(ctx context.Context) ([]referral.Referral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]referral.Referral, 0, len(s.referrals))
	for _, ref := range s.referrals {
		items = append(items, ref)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) GetReferralByID(ctx context.Context, id int) (*referral.Referral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.referrals[id]
	if !ok {
		return nil, referral.ErrReferralNotFound
	}
	return &ref, nil
}

func (s *Store) CreateReferral(ctx context.Context, ref *referral.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.referralSeq++
	ref.ID = s.referralSeq
	s.referrals[ref.ID] = *ref
	return nil
}

func (s *Store) UpdateReferral(ctx context.Context, ref *referral.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.referrals[ref.ID]; !ok {
		return referral.ErrReferralNotFound
	}
	s.referrals[ref.ID] = *ref
	return nil
}

func (s *Store) DeleteReferral(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.referrals[id]; !ok {
		return false, nil
	}
	delete(s.referrals, id)
	return true, nil
}

func (s *Store) CountReferralsByCandidateID(ctx context.Context, candidateID int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, ref := range s.referrals {
		if ref.CandidateID == candidateID {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountReferralsByPositionID(ctx context.Context, positionID int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, ref := range s.referrals {
		if ref.PositionID == positionID {
			count++
		}
	}
	return count, nil
}
