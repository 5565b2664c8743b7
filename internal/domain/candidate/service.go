package candidate

import (
	"context"
	"fmt"
	"strings"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
)

// ReferralGuard reports how many referrals reference a candidate.
type ReferralGuard interface {
	CountReferralsByCandidateID(ctx context.Context, candidateID int) (int64, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, activityType, description string, relatedID *int, relatedType string)
}

type Service struct {
	repo      Repository
	referrals ReferralGuard
	activity  ActivityRecorder
}

func NewService(repo Repository, referrals ReferralGuard, recorder ActivityRecorder) *Service {
	return &Service{repo: repo, referrals: referrals, activity: recorder}
}

func (s *Service) ListCandidates(ctx context.Context) ([]Candidate, error) {
	return s.repo.ListCandidates(ctx)
}

func (s *Service) GetCandidate(ctx context.Context, id int) (*Candidate, error) {
	return s.repo.GetCandidateByID(ctx, id)
}

func (s *Service) CreateCandidate(ctx context.Context, input CreateCandidateInput) (*Candidate, error) {
	if err := validateInput(input.FullName, input.Email, input.Experience); err != nil {
		return nil, err
	}

	cand := Candidate{
		FullName:          strings.TrimSpace(input.FullName),
		Email:             strings.TrimSpace(input.Email),
		Phone:             input.Phone,
		CurrentRole:       input.CurrentRole,
		Skills:            input.Skills,
		Experience:        input.Experience,
		SalaryExpectation: input.SalaryExpectation,
		Notes:             input.Notes,
		Availability:      input.Availability,
		Status:            input.Status,
	}
	if cand.Status == "" {
		cand.Status = StatusLooking
	}

	if err := s.repo.CreateCandidate(ctx, &cand); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, activity.TypeCandidateAdded,
		fmt.Sprintf("Added a new candidate: %s", cand.FullName),
		&cand.ID, activity.RelatedCandidate)

	return &cand, nil
}

func (s *Service) UpdateCandidate(ctx context.Context, id int, input UpdateCandidateInput) (*Candidate, error) {
	existing, err := s.repo.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.FullName != nil {
		updated.FullName = *input.FullName
	}
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.Phone != nil {
		updated.Phone = *input.Phone
	}
	if input.CurrentRole != nil {
		updated.CurrentRole = *input.CurrentRole
	}
	if input.Skills != nil {
		updated.Skills = *input.Skills
	}
	if input.Experience != nil {
		updated.Experience = *input.Experience
	}
	if input.SalaryExpectation.Set {
		updated.SalaryExpectation = input.SalaryExpectation.Value
	}
	if input.Notes.Set {
		updated.Notes = input.Notes.Value
	}
	if input.Availability != nil {
		updated.Availability = *input.Availability
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}

	if err := s.repo.UpdateCandidate(ctx, &updated); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != existing.Status {
		s.activity.Record(ctx, activity.TypeCandidateUpdated,
			fmt.Sprintf("Updated candidate status: %s is now %s", updated.FullName, updated.Status),
			&updated.ID, activity.RelatedCandidate)
	}

	return &updated, nil
}

func (s *Service) DeleteCandidate(ctx context.Context, id int) error {
	existing, err := s.repo.GetCandidateByID(ctx, id)
	if err != nil {
		return err
	}

	dependents, err := s.referrals.CountReferralsByCandidateID(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrCandidateHasReferrals
	}

	deleted, err := s.repo.DeleteCandidate(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCandidateNotFound
	}

	s.activity.Record(ctx, activity.TypeCandidateDeleted,
		fmt.Sprintf("Deleted candidate: %s", existing.FullName),
		nil, activity.RelatedCandidate)

	return nil
}

func validateInput(fullName, email string, experience int) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if experience < 0 {
		return fmt.Errorf("experience must be non-negative")
	}
	return nil
}
