package referral

import (
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
)

const (
	StatusReferred     = "Referred"
	StatusInterviewing = "Interviewing"
	StatusHired        = "Hired"
	StatusRejected     = "Rejected"
)

const (
	ModePlacement = "Placement"
	ModeOutsource = "Outsource"
)

const (
	FeeTypeOneTime = "OneTime"
	FeeTypeMonthly = "Monthly"
)

type Referral struct {
	ID           int       `gorm:"primaryKey"`
	CandidateID  int       `gorm:"not null;index"`
	PositionID   int       `gorm:"not null;index"`
	ReferralDate time.Time `gorm:"not null"`
	Status       string    `gorm:"not null;default:'Referred'"`
	Notes        *string
	FeeEarned    *float64 `gorm:"type:double precision"`
	Mode         string   `gorm:"not null;default:'Placement'"`
	FeeType      string   `gorm:"not null;default:'OneTime'"`
	FeeMonths    *int
}

// ReferralWithDetails is the read-time join of a referral with the candidate
// and position it links. It is never stored.
type ReferralWithDetails struct {
	Referral
	Candidate candidate.Candidate
	Position  position.Position
}

type CreateReferralInput struct {
	CandidateID  int
	PositionID   int
	ReferralDate *time.Time
	Status       string
	Notes        *string
	FeeEarned    *float64
	Mode         string
	FeeType      string
	FeeMonths    *int
}

type OptionalNullableString struct {
	Set   bool
	Value *string
}

type OptionalNullableFloat struct {
	Set   bool
	Value *float64
}

type OptionalNullableInt struct {
	Set   bool
	Value *int
}

type UpdateReferralInput struct {
	CandidateID  *int
	PositionID   *int
	ReferralDate *time.Time
	Status       *string
	Notes        OptionalNullableString
	FeeEarned    OptionalNullableFloat
	Mode         *string
	FeeType      *string
	FeeMonths    OptionalNullableInt
}
