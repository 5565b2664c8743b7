package inmemory

import (
	"context"
	"sort"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
)

func (s *Store) ListActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]activity.Activity, 0, len(s.activities))
	for _, entry := range s.activities {
		items = append(items, entry)
	}
	// Newest first; id breaks ties for entries recorded in the same instant.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].ID > items[j].ID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) CreateActivity(ctx context.Context, entry *activity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activitySeq++
	entry.ID = s.activitySeq
	s.activities[entry.ID] = *entry
	return nil
}
