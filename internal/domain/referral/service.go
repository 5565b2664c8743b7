package referral

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

// Candidates is the slice of the candidate service the lifecycle engine
// needs: lookups for the joined view and the status cascade on hire.
type Candidates interface {
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
	GetCandidate(ctx context.Context, id int) (*candidate.Candidate, error)
	UpdateCandidate(ctx context.Context, id int, input candidate.UpdateCandidateInput) (*candidate.Candidate, error)
}

type Positions interface {
	ListPositions(ctx context.Context) ([]position.Position, error)
	GetPosition(ctx context.Context, id int) (*position.Position, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, activityType, description string, relatedID *int, relatedType string)
}

type Service struct {
	repo       Repository
	candidates Candidates
	positions  Positions
	activity   ActivityRecorder
	log        logger.Logger
	now        func() time.Time
}

func NewService(repo Repository, candidates Candidates, positions Positions, recorder ActivityRecorder, log logger.Logger) *Service {
	return &Service{
		repo:       repo,
		candidates: candidates,
		positions:  positions,
		activity:   recorder,
		log:        log,
		now:        time.Now,
	}
}

// ListReferrals returns the joined details view. Referrals whose candidate or
// position no longer resolves are omitted, matching inner-join semantics.
func (s *Service) ListReferrals(ctx context.Context) ([]ReferralWithDetails, error) {
	refs, err := s.repo.ListReferrals(ctx)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return []ReferralWithDetails{}, nil
	}

	cands, err := s.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	poss, err := s.positions.ListPositions(ctx)
	if err != nil {
		return nil, err
	}

	candByID := make(map[int]candidate.Candidate, len(cands))
	for _, c := range cands {
		candByID[c.ID] = c
	}
	posByID := make(map[int]position.Position, len(poss))
	for _, p := range poss {
		posByID[p.ID] = p
	}

	items := make([]ReferralWithDetails, 0, len(refs))
	for _, ref := range refs {
		cand, okCand := candByID[ref.CandidateID]
		pos, okPos := posByID[ref.PositionID]
		if !okCand || !okPos {
			continue
		}
		items = append(items, ReferralWithDetails{Referral: ref, Candidate: cand, Position: pos})
	}

	return items, nil
}

func (s *Service) GetReferral(ctx context.Context, id int) (*ReferralWithDetails, error) {
	ref, err := s.repo.GetReferralByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cand, err := s.candidates.GetCandidate(ctx, ref.CandidateID)
	if err != nil {
		return nil, resolveJoinError(err)
	}
	pos, err := s.positions.GetPosition(ctx, ref.PositionID)
	if err != nil {
		return nil, resolveJoinError(err)
	}

	return &ReferralWithDetails{Referral: *ref, Candidate: *cand, Position: *pos}, nil
}

func (s *Service) CreateReferral(ctx context.Context, input CreateReferralInput) (*Referral, error) {
	ref := Referral{
		CandidateID:  input.CandidateID,
		PositionID:   input.PositionID,
		ReferralDate: s.now().UTC(),
		Status:       input.Status,
		Notes:        input.Notes,
		FeeEarned:    input.FeeEarned,
		Mode:         input.Mode,
		FeeType:      input.FeeType,
		FeeMonths:    input.FeeMonths,
	}
	if input.ReferralDate != nil {
		ref.ReferralDate = *input.ReferralDate
	}
	if ref.Status == "" {
		ref.Status = StatusReferred
	}
	if ref.Mode == "" {
		ref.Mode = ModePlacement
	}
	if ref.FeeType == "" {
		ref.FeeType = FeeTypeOneTime
	}

	if err := s.repo.CreateReferral(ctx, &ref); err != nil {
		return nil, err
	}

	// Skipped when either side of the link no longer resolves; the create
	// itself has already committed.
	cand, candErr := s.candidates.GetCandidate(ctx, ref.CandidateID)
	pos, posErr := s.positions.GetPosition(ctx, ref.PositionID)
	if candErr == nil && posErr == nil {
		s.activity.Record(ctx, activity.TypeReferralCreated,
			fmt.Sprintf("Made a new referral: %s for %s at %s", cand.FullName, pos.Title, pos.Company),
			&ref.ID, activity.RelatedReferral)
	}

	return &ref, nil
}

// UpdateReferral merges the partial input over the stored referral and
// persists it. When the patch moves the status to Hired from any other
// status and carries a non-zero fee, the hire cascade fires: a fee activity
// is recorded and the candidate is moved to Placed.
func (s *Service) UpdateReferral(ctx context.Context, id int, input UpdateReferralInput) (*Referral, error) {
	existing, err := s.repo.GetReferralByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.CandidateID != nil {
		updated.CandidateID = *input.CandidateID
	}
	if input.PositionID != nil {
		updated.PositionID = *input.PositionID
	}
	if input.ReferralDate != nil {
		updated.ReferralDate = *input.ReferralDate
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Notes.Set {
		updated.Notes = input.Notes.Value
	}
	if input.FeeEarned.Set {
		updated.FeeEarned = input.FeeEarned.Value
	}
	if input.Mode != nil {
		updated.Mode = *input.Mode
	}
	if input.FeeType != nil {
		updated.FeeType = *input.FeeType
	}
	if input.FeeMonths.Set {
		updated.FeeMonths = input.FeeMonths.Value
	}

	if err := s.repo.UpdateReferral(ctx, &updated); err != nil {
		return nil, err
	}

	if hireWithFee(input, existing.Status) {
		s.cascadeHire(ctx, updated.ID, existing.CandidateID, *input.FeeEarned.Value)
	}

	return &updated, nil
}

func (s *Service) DeleteReferral(ctx context.Context, id int) error {
	existing, err := s.repo.GetReferralByID(ctx, id)
	if err != nil {
		return err
	}

	// Resolve the joined names before the row disappears.
	cand, candErr := s.candidates.GetCandidate(ctx, existing.CandidateID)
	pos, posErr := s.positions.GetPosition(ctx, existing.PositionID)

	deleted, err := s.repo.DeleteReferral(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReferralNotFound
	}

	if candErr == nil && posErr == nil {
		s.activity.Record(ctx, activity.TypeReferralDeleted,
			fmt.Sprintf("Deleted referral: %s for %s at %s", cand.FullName, pos.Title, pos.Company),
			nil, activity.RelatedReferral)
	}

	return nil
}

// hireWithFee gates the hire cascade. The fee must come from the patch
// itself and be non-nil and non-zero; a transition to Hired without a fee
// records nothing and leaves the candidate alone.
func hireWithFee(input UpdateReferralInput, previousStatus string) bool {
	if input.Status == nil || *input.Status != StatusHired {
		return false
	}
	if previousStatus == StatusHired {
		return false
	}
	return input.FeeEarned.Set && input.FeeEarned.Value != nil && *input.FeeEarned.Value != 0
}

// cascadeHire runs after the referral update has committed, so failures here
// must not surface to the caller. The placed candidate is the one the
// referral pointed at before the patch, even when the patch re-points it.
func (s *Service) cascadeHire(ctx context.Context, referralID, candidateID int, fee float64) {
	cand, err := s.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		s.log.BusinessError("referral: hire cascade skipped, candidate not resolved", err, "referral_id", referralID, "candidate_id", candidateID)
		return
	}

	s.activity.Record(ctx, activity.TypeReferralUpdated,
		fmt.Sprintf("Received referral fee: ₪%s for %s", formatFee(fee), cand.FullName),
		&referralID, activity.RelatedReferral)

	placed := candidate.StatusPlaced
	if _, err := s.candidates.UpdateCandidate(ctx, cand.ID, candidate.UpdateCandidateInput{Status: &placed}); err != nil {
		s.log.InternalError("referral: candidate placement update failed", err, "referral_id", referralID, "candidate_id", cand.ID)
	}
}

func formatFee(fee float64) string {
	return strconv.FormatFloat(fee, 'f', -1, 64)
}

func resolveJoinError(err error) error {
	// A dangling foreign key makes the joined view unavailable; callers see
	// that as the referral being absent.
	if errors.Is(err, candidate.ErrCandidateNotFound) || errors.Is(err, position.ErrPositionNotFound) {
		return ErrReferralNotFound
	}
	return err
}
