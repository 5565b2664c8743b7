package inmemory

import (
	"context"
	"sort"

	"github.com/yurykissin/RecrutTrack/internal/domain/position"
)

func (s *Store) ListPositions(ctx context.Context) ([]position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]position.Position, 0, len(s.positions))
	for _, pos := range s.positions {
		items = append(items, pos)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) GetPositionByID(ctx context.Context, id int) (*position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.positions[id]
	if !ok {
		return nil, position.ErrPositionNotFound
	}
	return &pos, nil
}

func (s *Store) CreatePosition(ctx context.Context, pos *position.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positionSeq++
	pos.ID = s.positionSeq
	s.positions[pos.ID] = *pos
	return nil
}

func (s *Store) UpdatePosition(ctx context.Context, pos *position.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[pos.ID]; !ok {
		return position.ErrPositionNotFound
	}
	s.positions[pos.ID] = *pos
	return nil
}

func (s *Store) DeletePosition(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[id]; !ok {
		return false, nil
	}
	delete(s.positions, id)
	return true, nil
}
