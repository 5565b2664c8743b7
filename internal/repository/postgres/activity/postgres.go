package activity

import (
	"context"

	activitydomain "github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActivities(ctx context.Context, limit int) ([]activitydomain.Activity, error) {
	query := r.db.WithContext(ctx).Order("timestamp desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var items []activitydomain.Activity
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateActivity(ctx context.Context, entry *activitydomain.Activity) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
