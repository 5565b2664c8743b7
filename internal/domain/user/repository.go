package user

import (
	"context"
	"time"
)

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	CreateUser(ctx context.Context, usr *User) error
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}
