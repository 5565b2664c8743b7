package activity

import (
	"context"
	"time"

	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Record appends an audit entry. The audit trail is best-effort: by the time
// an entry is recorded the triggering mutation has already committed, so a
// failed write is logged and swallowed rather than surfaced to the caller.
func (s *Service) Record(ctx context.Context, activityType, description string, relatedID *int, relatedType string) {
	entry := Activity{
		Type:        activityType,
		Description: description,
		Timestamp:   s.now().UTC(),
		RelatedID:   relatedID,
	}
	if relatedType != "" {
		entry.RelatedType = &relatedType
	}

	if err := s.repo.CreateActivity(ctx, &entry); err != nil {
		s.log.InternalError("activity: record failed", err, "type", activityType)
	}
}

func (s *Service) ListActivities(ctx context.Context, limit int) ([]Activity, error) {
	return s.repo.ListActivities(ctx, limit)
}
