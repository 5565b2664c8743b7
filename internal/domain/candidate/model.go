package candidate

const (
	StatusLooking = "Looking"
	StatusPlaced  = "Placed"
)

// Availability values as the intake form submits them.
const (
	AvailabilityImmediate   = "immediate"
	AvailabilityTwoWeeks    = "2weeks"
	AvailabilityOneMonth    = "1month"
	AvailabilityThreeMonths = "3months"
)

type Candidate struct {
	ID                int    `gorm:"primaryKey"`
	FullName          string `gorm:"not null"`
	Email             string `gorm:"not null"`
	Phone             string `gorm:"not null"`
	CurrentRole       string `gorm:"not null"`
	Skills            string `gorm:"not null"`
	Experience        int    `gorm:"not null"`
	SalaryExpectation *float64
	Notes             *string
	Availability      string `gorm:"not null"`
	Status            string `gorm:"not null;default:'Looking'"`
}

type CreateCandidateInput struct {
	FullName          string
	Email             string
	Phone             string
	CurrentRole       string
	Skills            string
	Experience        int
	SalaryExpectation *float64
	Notes             *string
	Availability      string
	Status            string
}

type OptionalNullableString struct {
	Set   bool
	Value *string
}

type OptionalNullableFloat struct {
	Set   bool
	Value *float64
}

type UpdateCandidateInput struct {
	FullName          *string
	Email             *string
	Phone             *string
	CurrentRole       *string
	Skills            *string
	Experience        *int
	SalaryExpectation OptionalNullableFloat
	Notes             OptionalNullableString
	Availability      *string
	Status            *string
}
