package referral

import (
	"context"
	"errors"

	referraldomain "github.com/yurykissin/RecrutTrack/internal/domain/referral"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListReferrals(ctx context.Context) ([]referraldomain.Referral, error) {
	var items []referraldomain.Referral
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetReferralByID(ctx context.Context, id int) (*referraldomain.Referral, error) {
	var ref referraldomain.Referral
	if err := r.db.WithContext(ctx).First(&ref, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, referraldomain.ErrReferralNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *PostgresRepository) CreateReferral(ctx context.Context, ref *referraldomain.Referral) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *PostgresRepository) UpdateReferral(ctx context.Context, ref *referraldomain.Referral) error {
	return r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("id = ?", ref.ID).
		Updates(map[string]interface{}{
			"candidate_id":  ref.CandidateID,
			"position_id":   ref.PositionID,
			"referral_date": ref.ReferralDate,
			"status":        ref.Status,
			"notes":         ref.Notes,
			"fee_earned":    ref.FeeEarned,
			"mode":          ref.Mode,
			"fee_type":      ref.FeeType,
			"fee_months":    ref.FeeMonths,
		}).Error
}

func (r *PostgresRepository) DeleteReferral(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&referraldomain.Referral{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountReferralsByCandidateID(ctx context.Context, candidateID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountReferralsByPositionID(ctx context.Context, positionID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&referraldomain.Referral{}).
		Where("position_id = ?", positionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
