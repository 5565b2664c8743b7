package user

import "time"

const (
	ProviderLocal = "local"
	RoleUser      = "user"
)

type User struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	Provider   string `gorm:"not null;default:'local'"`
	ProviderID *string
	Role       string `gorm:"not null;default:'user'"`
	LastLogin  *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}
