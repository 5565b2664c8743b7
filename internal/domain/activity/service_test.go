package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

type fakeActivitiesRepo struct {
	entries []Activity
	failing bool
}

func (r *fakeActivitiesRepo) ListActivities(ctx context.Context, limit int) ([]Activity, error) {
	if limit > 0 && limit < len(r.entries) {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

func (r *fakeActivitiesRepo) CreateActivity(ctx context.Context, entry *Activity) error {
	if r.failing {
		return errors.New("write failed")
	}
	entry.ID = len(r.entries) + 1
	r.entries = append(r.entries, *entry)
	return nil
}

func newTestService(repo *fakeActivitiesRepo) *Service {
	svc := NewService(repo, logger.New(io.Discard, slog.LevelError, "text"))
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestRecordStoresEntry(t *testing.T) {
	repo := &fakeActivitiesRepo{}
	svc := newTestService(repo)

	relatedID := 7
	svc.Record(context.Background(), TypePositionAdded, "Added a new position: Engineer at Acme", &relatedID, RelatedPosition)

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Type != TypePositionAdded {
		t.Fatalf("expected type %q, got %q", TypePositionAdded, entry.Type)
	}
	if entry.RelatedID == nil || *entry.RelatedID != relatedID {
		t.Fatalf("expected related id %d, got %v", relatedID, entry.RelatedID)
	}
	if entry.RelatedType == nil || *entry.RelatedType != RelatedPosition {
		t.Fatalf("expected related type %q, got %v", RelatedPosition, entry.RelatedType)
	}
	if entry.Timestamp.IsZero() {
		t.Fatalf("expected timestamp stamped")
	}
}

func TestRecordSwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeActivitiesRepo{failing: true}
	svc := newTestService(repo)

	// Must not panic or surface the error.
	svc.Record(context.Background(), TypePositionAdded, "Added a new position: Engineer at Acme", nil, RelatedPosition)

	if len(repo.entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(repo.entries))
	}
}

func TestRecordEmptyRelatedTypeLeftNil(t *testing.T) {
	repo := &fakeActivitiesRepo{}
	svc := newTestService(repo)

	svc.Record(context.Background(), TypePositionDeleted, "Deleted position: Engineer at Acme", nil, "")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].RelatedType != nil {
		t.Fatalf("expected nil related type, got %q", *repo.entries[0].RelatedType)
	}
}
