package position

import "time"

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

type Position struct {
	ID          int       `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Company     string    `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	SalaryMin   int       `gorm:"not null"`
	SalaryMax   int       `gorm:"not null"`
	Status      string    `gorm:"not null;default:'Open'"`
	DateAdded   time.Time `gorm:"not null"`
}

type CreatePositionInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	SalaryMin   int
	SalaryMax   int
	Status      string
	DateAdded   *time.Time
}

type UpdatePositionInput struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	SalaryMin   *int
	SalaryMax   *int
	Status      *string
	DateAdded   *time.Time
}
