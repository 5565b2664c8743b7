package activity

import "time"

// Event type tags, one per tracked mutation.
const (
	TypePositionAdded    = "position_added"
	TypePositionUpdated  = "position_updated"
	TypePositionDeleted  = "position_deleted"
	TypeCandidateAdded   = "candidate_added"
	TypeCandidateUpdated = "candidate_updated"
	TypeCandidateDeleted = "candidate_deleted"
	TypeReferralCreated  = "referral_created"
	TypeReferralUpdated  = "referral_updated"
	TypeReferralDeleted  = "referral_deleted"
)

const (
	RelatedPosition  = "position"
	RelatedCandidate = "candidate"
	RelatedReferral  = "referral"
)

type Activity struct {
	ID          int       `gorm:"primaryKey"`
	Type        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Timestamp   time.Time `gorm:"not null;index"`
	RelatedID   *int
	RelatedType *string
}
