package inmemory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/dashboard"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
	"github.com/yurykissin/RecrutTrack/internal/domain/referral"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

type services struct {
	positions  *position.Service
	candidates *candidate.Service
	referrals  *referral.Service
	activities *activity.Service
	dashboard  *dashboard.Service
}

func newServices(store *Store) services {
	log := logger.New(io.Discard, slog.LevelError, "text")
	activities := activity.NewService(store, log)
	positions := position.NewService(store, store, activities)
	candidates := candidate.NewService(store, store, activities)
	referrals := referral.NewService(store, candidates, positions, activities, log)
	return services{
		positions:  positions,
		candidates: candidates,
		referrals:  referrals,
		activities: activities,
		dashboard:  dashboard.NewService(store),
	}
}

func TestHiringFlow(t *testing.T) {
	ctx := context.Background()
	svc := newServices(NewStore())

	pos, err := svc.positions.CreatePosition(ctx, position.CreatePositionInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("create position: %v", err)
	}
	cand, err := svc.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{FullName: "Dana Cohen", Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("create candidate: %v", err)
	}
	ref, err := svc.referrals.CreateReferral(ctx, referral.CreateReferralInput{CandidateID: cand.ID, PositionID: pos.ID})
	if err != nil {
		t.Fatalf("create referral: %v", err)
	}

	stats, err := svc.dashboard.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.OpenPositions != 1 || stats.ActiveCandidates != 1 || stats.ReferralsMade != 1 || stats.FeesEarned != 0 {
		t.Fatalf("unexpected initial stats %+v", stats)
	}

	hired := referral.StatusHired
	fee := 25000.0
	if _, err := svc.referrals.UpdateReferral(ctx, ref.ID, referral.UpdateReferralInput{
		Status:    &hired,
		FeeEarned: referral.OptionalNullableFloat{Set: true, Value: &fee},
	}); err != nil {
		t.Fatalf("hire referral: %v", err)
	}

	placedCand, err := svc.candidates.GetCandidate(ctx, cand.ID)
	if err != nil {
		t.Fatalf("get candidate: %v", err)
	}
	if placedCand.Status != candidate.StatusPlaced {
		t.Fatalf("expected candidate placed, got %q", placedCand.Status)
	}

	stats, err = svc.dashboard.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ActiveCandidates != 0 {
		t.Fatalf("expected 0 active candidates, got %d", stats.ActiveCandidates)
	}
	if stats.FeesEarned != 25000 {
		t.Fatalf("expected fees 25000, got %v", stats.FeesEarned)
	}

	// The hire appends exactly two entries: the fee entry, then the
	// candidate placement entry.
	entries, err := svc.activities.ListActivities(ctx, 2)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Type != activity.TypeCandidateUpdated {
		t.Fatalf("expected newest entry %q, got %q", activity.TypeCandidateUpdated, entries[0].Type)
	}
	if entries[0].Description != "Updated candidate status: Dana Cohen is now Placed" {
		t.Fatalf("unexpected description %q", entries[0].Description)
	}
	if entries[1].Type != activity.TypeReferralUpdated {
		t.Fatalf("expected fee entry %q, got %q", activity.TypeReferralUpdated, entries[1].Type)
	}
	if entries[1].Description != "Received referral fee: ₪25000 for Dana Cohen" {
		t.Fatalf("unexpected description %q", entries[1].Description)
	}
}

func TestActivitiesNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	svc := newServices(NewStore())

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if _, err := svc.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{FullName: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("create candidate: %v", err)
		}
	}

	entries, err := svc.activities.ListActivities(ctx, 2)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "Added a new candidate: Third" {
		t.Fatalf("expected newest first, got %q", entries[0].Description)
	}
	if entries[1].Description != "Added a new candidate: Second" {
		t.Fatalf("unexpected second entry %q", entries[1].Description)
	}
}

func TestDeleteGuardsAcrossEntities(t *testing.T) {
	ctx := context.Background()
	svc := newServices(NewStore())

	pos, err := svc.positions.CreatePosition(ctx, position.CreatePositionInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("create position: %v", err)
	}
	cand, err := svc.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{FullName: "Dana Cohen", Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("create candidate: %v", err)
	}
	ref, err := svc.referrals.CreateReferral(ctx, referral.CreateReferralInput{CandidateID: cand.ID, PositionID: pos.ID})
	if err != nil {
		t.Fatalf("create referral: %v", err)
	}

	if err := svc.positions.DeletePosition(ctx, pos.ID); !errors.Is(err, position.ErrPositionHasReferrals) {
		t.Fatalf("expected ErrPositionHasReferrals, got %v", err)
	}
	if err := svc.candidates.DeleteCandidate(ctx, cand.ID); !errors.Is(err, candidate.ErrCandidateHasReferrals) {
		t.Fatalf("expected ErrCandidateHasReferrals, got %v", err)
	}

	if err := svc.referrals.DeleteReferral(ctx, ref.ID); err != nil {
		t.Fatalf("delete referral: %v", err)
	}

	if err := svc.positions.DeletePosition(ctx, pos.ID); err != nil {
		t.Fatalf("delete position after referral removed: %v", err)
	}
	if err := svc.candidates.DeleteCandidate(ctx, cand.ID); err != nil {
		t.Fatalf("delete candidate after referral removed: %v", err)
	}
}

func TestReferralCountsByEntity(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	svc := newServices(store)

	pos, _ := svc.positions.CreatePosition(ctx, position.CreatePositionInput{Title: "Backend Engineer", Company: "Acme"})
	candA, _ := svc.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{FullName: "Dana Cohen", Email: "dana@example.com"})
	candB, _ := svc.candidates.CreateCandidate(ctx, candidate.CreateCandidateInput{FullName: "Yossi Levi", Email: "yossi@example.com"})

	if _, err := svc.referrals.CreateReferral(ctx, referral.CreateReferralInput{CandidateID: candA.ID, PositionID: pos.ID}); err != nil {
		t.Fatalf("create referral: %v", err)
	}
	if _, err := svc.referrals.CreateReferral(ctx, referral.CreateReferralInput{CandidateID: candB.ID, PositionID: pos.ID}); err != nil {
		t.Fatalf("create referral: %v", err)
	}

	byPosition, err := store.CountReferralsByPositionID(ctx, pos.ID)
	if err != nil {
		t.Fatalf("count by position: %v", err)
	}
	if byPosition != 2 {
		t.Fatalf("expected 2 referrals for position, got %d", byPosition)
	}

	byCandidate, err := store.CountReferralsByCandidateID(ctx, candA.ID)
	if err != nil {
		t.Fatalf("count by candidate: %v", err)
	}
	if byCandidate != 1 {
		t.Fatalf("expected 1 referral for candidate, got %d", byCandidate)
	}
}
