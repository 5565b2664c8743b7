package dashboard

import (
	"context"
	"time"

	activitydomain "github.com/yurykissin/RecrutTrack/internal/domain/activity"
	candidatedomain "github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	positiondomain "github.com/yurykissin/RecrutTrack/internal/domain/position"
	referraldomain "github.com/yurykissin/RecrutTrack/internal/domain/referral"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountPositionsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&positiondomain.Position{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountPositionsAddedAfter(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&positiondomain.Position{}).
		Where("date_added > ?", after).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountCandidatesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&candidatedomain.Candidate{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountReferrals(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountReferralsAfter(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("referral_date > ?", after).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) SumFeesEarned(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("status = ?", referraldomain.StatusHired).
		Select("COALESCE(SUM(fee_earned), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *PostgresRepository) SumFeesEarnedAfter(ctx context.Context, after time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("status = ? AND referral_date > ?", referraldomain.StatusHired, after).
		Select("COALESCE(SUM(fee_earned), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *PostgresRepository) CountActivitiesByTypeAfter(ctx context.Context, activityType string, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&activitydomain.Activity{}).
		Where("type = ? AND timestamp > ?", activityType, after).
		Count(&count).Error
	return count, err
}
