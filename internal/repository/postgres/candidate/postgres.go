package candidate

import (
	"context"
	"errors"

	candidatedomain "github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListCandidates(ctx context.Context) ([]candidatedomain.Candidate, error) {
	var items []candidatedomain.Candidate
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetCandidateByID(ctx context.Context, id int) (*candidatedomain.Candidate, error) {
	var cand candidatedomain.Candidate
	if err := r.db.WithContext(ctx).First(&cand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, candidatedomain.ErrCandidateNotFound
		}
		return nil, err
	}
	return &cand, nil
}

func (r *PostgresRepository) CreateCandidate(ctx context.Context, cand *candidatedomain.Candidate) error {
	return r.db.WithContext(ctx).Create(cand).Error
}

func (r *PostgresRepository) UpdateCandidate(ctx context.Context, cand *candidatedomain.Candidate) error {
	return r.db.WithContext(ctx).
		Model(&candidatedomain.Candidate{}).
		Where("id = ?", cand.ID).
		Updates(map[string]interface{}{
			"full_name":          cand.FullName,
			"email":              cand.Email,
			"phone":              cand.Phone,
			"current_role":       cand.CurrentRole,
			"skills":             cand.Skills,
			"experience":         cand.Experience,
			"salary_expectation": cand.SalaryExpectation,
			"notes":              cand.Notes,
			"availability":       cand.Availability,
			"status":             cand.Status,
		}).Error
}

func (r *PostgresRepository) DeleteCandidate(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&candidatedomain.Candidate{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
