package position

import (
	"context"
	"errors"

	positiondomain "github.com/yurykissin/RecrutTrack/internal/domain/position"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPositions(ctx context.Context) ([]positiondomain.Position, error) {
	var items []positiondomain.Position
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetPositionByID(ctx context.Context, id int) (*positiondomain.Position, error) {
	var pos positiondomain.Position
	if err := r.db.WithContext(ctx).First(&pos, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, positiondomain.ErrPositionNotFound
		}
		return nil, err
	}
	return &pos, nil
}

func (r *PostgresRepository) CreatePosition(ctx context.Context, pos *positiondomain.Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *PostgresRepository) UpdatePosition(ctx context.Context, pos *positiondomain.Position) error {
	return r.db.WithContext(ctx).
		Model(&positiondomain.Position{}).
		Where("id = ?", pos.ID).
		Updates(map[string]interface{}{
			"title":       pos.Title,
			"company":     pos.Company,
			"location":    pos.Location,
			"description": pos.Description,
			"salary_min":  pos.SalaryMin,
			"salary_max":  pos.SalaryMax,
			"status":      pos.Status,
			"date_added":  pos.DateAdded,
		}).Error
}

func (r *PostgresRepository) DeletePosition(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&positiondomain.Position{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
