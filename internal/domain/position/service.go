package position

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
)

// ReferralGuard reports how many referrals reference a position. A position
// with dependent referrals must not be deleted.
type ReferralGuard interface {
	CountReferralsByPositionID(ctx context.Context, positionID int) (int64, error)
}

// ActivityRecorder appends an audit entry; implementations never fail the
// triggering operation.
type ActivityRecorder interface {
	Record(ctx context.Context, activityType, description string, relatedID *int, relatedType string)
}

type Service struct {
	repo      Repository
	referrals ReferralGuard
	activity  ActivityRecorder
	now       func() time.Time
}

func NewService(repo Repository, referrals ReferralGuard, recorder ActivityRecorder) *Service {
	return &Service{repo: repo, referrals: referrals, activity: recorder, now: time.Now}
}

func (s *Service) ListPositions(ctx context.Context) ([]Position, error) {
	return s.repo.ListPositions(ctx)
}

func (s *Service) GetPosition(ctx context.Context, id int) (*Position, error) {
	return s.repo.GetPositionByID(ctx, id)
}

func (s *Service) CreatePosition(ctx context.Context, input CreatePositionInput) (*Position, error) {
	if err := validateInput(input.Title, input.Company); err != nil {
		return nil, err
	}

	pos := Position{
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Location:    input.Location,
		Description: input.Description,
		SalaryMin:   input.SalaryMin,
		SalaryMax:   input.SalaryMax,
		Status:      input.Status,
		DateAdded:   s.now().UTC(),
	}
	if pos.Status == "" {
		pos.Status = StatusOpen
	}
	if input.DateAdded != nil {
		pos.DateAdded = *input.DateAdded
	}

	if err := s.repo.CreatePosition(ctx, &pos); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, activity.TypePositionAdded,
		fmt.Sprintf("Added a new position: %s at %s", pos.Title, pos.Company),
		&pos.ID, activity.RelatedPosition)

	return &pos, nil
}

func (s *Service) UpdatePosition(ctx context.Context, id int, input UpdatePositionInput) (*Position, error) {
	existing, err := s.repo.GetPositionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Company != nil {
		updated.Company = *input.Company
	}
	if input.Location != nil {
		updated.Location = *input.Location
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.SalaryMin != nil {
		updated.SalaryMin = *input.SalaryMin
	}
	if input.SalaryMax != nil {
		updated.SalaryMax = *input.SalaryMax
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.DateAdded != nil {
		updated.DateAdded = *input.DateAdded
	}

	if err := s.repo.UpdatePosition(ctx, &updated); err != nil {
		return nil, err
	}

	// Status-change entries fire only on an actual change; a no-op update
	// leaves the audit log untouched.
	if input.Status != nil && *input.Status != existing.Status {
		s.activity.Record(ctx, activity.TypePositionUpdated,
			fmt.Sprintf("Updated position status: %s at %s is now %s", updated.Title, updated.Company, updated.Status),
			&updated.ID, activity.RelatedPosition)
	}

	return &updated, nil
}

func (s *Service) DeletePosition(ctx context.Context, id int) error {
	existing, err := s.repo.GetPositionByID(ctx, id)
	if err != nil {
		return err
	}

	dependents, err := s.referrals.CountReferralsByPositionID(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrPositionHasReferrals
	}

	deleted, err := s.repo.DeletePosition(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPositionNotFound
	}

	s.activity.Record(ctx, activity.TypePositionDeleted,
		fmt.Sprintf("Deleted position: %s at %s", existing.Title, existing.Company),
		nil, activity.RelatedPosition)

	return nil
}

func validateInput(title, company string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(company) == "" {
		return fmt.Errorf("company is required")
	}
	return nil
}
