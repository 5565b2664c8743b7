package user

import (
	"context"
	"errors"
	"time"

	userdomain "github.com/yurykissin/RecrutTrack/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var usr userdomain.User
	if err := r.db.WithContext(ctx).First(&usr, "lower(email) = lower(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &usr, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int) (*userdomain.User, error) {
	var usr userdomain.User
	if err := r.db.WithContext(ctx).First(&usr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &usr, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, usr *userdomain.User) error {
	return r.db.WithContext(ctx).Create(usr).Error
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
