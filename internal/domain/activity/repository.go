package activity

import "context"

type Repository interface {
	// ListActivities returns entries newest-first. limit <= 0 means no limit.
	ListActivities(ctx context.Context, limit int) ([]Activity, error)
	CreateActivity(ctx context.Context, entry *Activity) error
}
