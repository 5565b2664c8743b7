package seed

import (
	"context"
	"fmt"

	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
	"github.com/yurykissin/RecrutTrack/internal/domain/referral"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

// Demo loads a small sample data set for local development. It goes through
// the services, so the audit trail gets populated the same way real traffic
// would populate it. A store that already holds positions is left untouched.
func Demo(
	ctx context.Context,
	positions *position.Service,
	candidates *candidate.Service,
	referrals *referral.Service,
	log logger.Logger,
) error {
	existing, err := positions.ListPositions(ctx)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		log.Info("seed: store not empty, skipping")
		return nil
	}

	positionInputs := []position.CreatePositionInput{
		{
			Title:       "Senior Backend Engineer",
			Company:     "TechNova",
			Location:    "Tel Aviv",
			Description: "Own the core services of a high-throughput payments platform.",
			SalaryMin:   35000,
			SalaryMax:   45000,
		},
		{
			Title:       "Frontend Developer",
			Company:     "Brightline",
			Location:    "Haifa",
			Description: "Build the customer-facing dashboard in React.",
			SalaryMin:   25000,
			SalaryMax:   32000,
		},
		{
			Title:       "DevOps Engineer",
			Company:     "CloudPeak",
			Location:    "Remote",
			Description: "Run the Kubernetes fleet and the deployment pipelines.",
			SalaryMin:   30000,
			SalaryMax:   40000,
		},
	}

	positionIDs := make([]int, 0, len(positionInputs))
	for _, input := range positionInputs {
		pos, err := positions.CreatePosition(ctx, input)
		if err != nil {
			return fmt.Errorf("seed position %q: %w", input.Title, err)
		}
		positionIDs = append(positionIDs, pos.ID)
	}

	salaryA := 42000.0
	notesB := "Prefers hybrid work, available from next month."
	candidateInputs := []candidate.CreateCandidateInput{
		{
			FullName:          "Dana Cohen",
			Email:             "dana.cohen@example.com",
			Phone:             "050-1234567",
			CurrentRole:       "Backend Engineer",
			Skills:            "Go, PostgreSQL, Kafka",
			Experience:        7,
			SalaryExpectation: &salaryA,
			Availability:      candidate.AvailabilityImmediate,
		},
		{
			FullName:     "Yossi Levi",
			Email:        "yossi.levi@example.com",
			Phone:        "052-7654321",
			CurrentRole:  "Frontend Developer",
			Skills:       "React, TypeScript, CSS",
			Experience:   4,
			Notes:        &notesB,
			Availability: candidate.AvailabilityOneMonth,
		},
		{
			FullName:     "Maya Shapiro",
			Email:        "maya.shapiro@example.com",
			Phone:        "054-9876543",
			CurrentRole:  "SRE",
			Skills:       "Kubernetes, Terraform, AWS",
			Experience:   5,
			Availability: candidate.AvailabilityTwoWeeks,
		},
	}

	candidateIDs := make([]int, 0, len(candidateInputs))
	for _, input := range candidateInputs {
		cand, err := candidates.CreateCandidate(ctx, input)
		if err != nil {
			return fmt.Errorf("seed candidate %q: %w", input.FullName, err)
		}
		candidateIDs = append(candidateIDs, cand.ID)
	}

	referralInputs := []referral.CreateReferralInput{
		{CandidateID: candidateIDs[0], PositionID: positionIDs[0], Status: referral.StatusInterviewing},
		{CandidateID: candidateIDs[1], PositionID: positionIDs[1], Status: referral.StatusReferred},
		{CandidateID: candidateIDs[2], PositionID: positionIDs[2], Status: referral.StatusReferred},
	}
	for _, input := range referralInputs {
		if _, err := referrals.CreateReferral(ctx, input); err != nil {
			return fmt.Errorf("seed referral: %w", err)
		}
	}

	log.Info("seed: demo data loaded",
		"positions", len(positionInputs),
		"candidates", len(candidateInputs),
		"referrals", len(referralInputs))
	return nil
}
