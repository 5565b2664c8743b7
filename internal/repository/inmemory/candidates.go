package inmemory

import (
	"context"
	"sort"

	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
)

func (s *Store) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]candidate.Candidate, 0, len(s.candidates))
	for _, cand := range s.candidates {
		items = append(items, cand)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) GetCandidateByID(ctx context.Context, id int) (*candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cand, ok := s.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	return &cand, nil
}

func (s *Store) CreateCandidate(ctx context.Context, cand *candidate.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidateSeq++
	cand.ID = s.candidateSeq
	s.candidates[cand.ID] = *cand
	return nil
}

func (s *Store) UpdateCandidate(ctx context.Context, cand *candidate.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candidates[cand.ID]; !ok {
		return candidate.ErrCandidateNotFound
	}
	s.candidates[cand.ID] = *cand
	return nil
}

func (s *Store) DeleteCandidate(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candidates[id]; !ok {
		return false, nil
	}
	delete(s.candidates, id)
	return true, nil
}
