package referral

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

type fakeReferralsRepo struct {
	referrals map[int]*Referral
	nextID    int
}

func newFakeReferralsRepo() *fakeReferralsRepo {
	return &fakeReferralsRepo{referrals: make(map[int]*Referral)}
}

func (r *fakeReferralsRepo) ListReferrals(ctx context.Context) ([]Referral, error) {
	items := make([]Referral, 0, len(r.referrals))
	for _, ref := range r.referrals {
		items = append(items, *ref)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeReferralsRepo) GetReferralByID(ctx context.Context, id int) (*Referral, error) {
	ref, ok := r.referrals[id]
	if !ok {
		return nil, ErrReferralNotFound
	}
	copied := *ref
	return &copied, nil
}

func (r *fakeReferralsRepo) CreateReferral(ctx context.Context, ref *Referral) error {
	r.nextID++
	ref.ID = r.nextID
	copied := *ref
	r.referrals[ref.ID] = &copied
	return nil
}

func (r *fakeReferralsRepo) UpdateReferral(ctx context.Context, ref *Referral) error {
	if _, ok := r.referrals[ref.ID]; !ok {
		return ErrReferralNotFound
	}
	copied := *ref
	r.referrals[ref.ID] = &copied
	return nil
}

func (r *fakeReferralsRepo) DeleteReferral(ctx context.Context, id int) (bool, error) {
	if _, ok := r.referrals[id]; !ok {
		return false, nil
	}
	delete(r.referrals, id)
	return true, nil
}

func (r *fakeReferralsRepo) CountReferralsByCandidateID(ctx context.Context, candidateID int) (int64, error) {
	var count int64
	for _, ref := range r.referrals {
		if ref.CandidateID == candidateID {
			count++
		}
	}
	return count, nil
}

func (r *fakeReferralsRepo) CountReferralsByPositionID(ctx context.Context, positionID int) (int64, error) {
	var count int64
	for _, ref := range r.referrals {
		if ref.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

type fakeCandidates struct {
	candidates map[int]candidate.Candidate
	updates    []candidate.UpdateCandidateInput
}

func newFakeCandidates() *fakeCandidates {
	return &fakeCandidates{candidates: make(map[int]candidate.Candidate)}
}

func (f *fakeCandidates) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	items := make([]candidate.Candidate, 0, len(f.candidates))
	for _, cand := range f.candidates {
		items = append(items, cand)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeCandidates) GetCandidate(ctx context.Context, id int) (*candidate.Candidate, error) {
	cand, ok := f.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	return &cand, nil
}

func (f *fakeCandidates) UpdateCandidate(ctx context.Context, id int, input candidate.UpdateCandidateInput) (*candidate.Candidate, error) {
	cand, ok := f.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	if input.Status != nil {
		cand.Status = *input.Status
	}
	f.candidates[id] = cand
	f.updates = append(f.updates, input)
	return &cand, nil
}

type fakePositions struct {
	positions map[int]position.Position
}

func newFakePositions() *fakePositions {
	return &fakePositions{positions: make(map[int]position.Position)}
}

func (f *fakePositions) ListPositions(ctx context.Context) ([]position.Position, error) {
	items := make([]position.Position, 0, len(f.positions))
	for _, pos := range f.positions {
		items = append(items, pos)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakePositions) GetPosition(ctx context.Context, id int) (*position.Position, error) {
	pos, ok := f.positions[id]
	if !ok {
		return nil, position.ErrPositionNotFound
	}
	return &pos, nil
}

type recordedActivity struct {
	activityType string
	description  string
	relatedID    *int
	relatedType  string
}

type fakeRecorder struct {
	recorded []recordedActivity
}

func (f *fakeRecorder) Record(ctx context.Context, activityType, description string, relatedID *int, relatedType string) {
	f.recorded = append(f.recorded, recordedActivity{
		activityType: activityType,
		description:  description,
		relatedID:    relatedID,
		relatedType:  relatedType,
	})
}

type fixture struct {
	svc        *Service
	repo       *fakeReferralsRepo
	candidates *fakeCandidates
	positions  *fakePositions
	recorder   *fakeRecorder
}

func newFixture() *fixture {
	repo := newFakeReferralsRepo()
	candidates := newFakeCandidates()
	positions := newFakePositions()
	recorder := &fakeRecorder{}
	log := logger.New(io.Discard, slog.LevelError, "text")

	svc := NewService(repo, candidates, positions, recorder, log)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	candidates.candidates[1] = candidate.Candidate{ID: 1, FullName: "Dana Cohen", Email: "dana@example.com", Status: candidate.StatusLooking}
	positions.positions[1] = position.Position{ID: 1, Title: "Backend Engineer", Company: "Acme", Status: position.StatusOpen}

	return &fixture{svc: svc, repo: repo, candidates: candidates, positions: positions, recorder: recorder}
}

func TestCreateReferralDefaults(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref.Status != StatusReferred {
		t.Fatalf("expected default status %q, got %q", StatusReferred, ref.Status)
	}
	if ref.Mode != ModePlacement {
		t.Fatalf("expected default mode %q, got %q", ModePlacement, ref.Mode)
	}
	if ref.FeeType != FeeTypeOneTime {
		t.Fatalf("expected default fee type %q, got %q", FeeTypeOneTime, ref.FeeType)
	}
	if ref.ReferralDate.IsZero() {
		t.Fatalf("expected referral date stamped")
	}

	if len(f.recorder.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(f.recorder.recorded))
	}
	entry := f.recorder.recorded[0]
	if entry.activityType != activity.TypeReferralCreated {
		t.Fatalf("expected %q activity, got %q", activity.TypeReferralCreated, entry.activityType)
	}
	if entry.description != "Made a new referral: Dana Cohen for Backend Engineer at Acme" {
		t.Fatalf("unexpected description %q", entry.description)
	}
}

func TestCreateReferralUnresolvedLinkSkipsActivity(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 99, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.repo.referrals[ref.ID] == nil {
		t.Fatalf("referral not stored")
	}
	if len(f.recorder.recorded) != 0 {
		t.Fatalf("expected no activities, got %d", len(f.recorder.recorded))
	}
}

func TestListReferralsSkipsDanglingLinks(t *testing.T) {
	f := newFixture()

	if _, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 99, PositionID: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	items, err := f.svc.ListReferrals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 joined referral, got %d", len(items))
	}
	if items[0].Candidate.FullName != "Dana Cohen" || items[0].Position.Title != "Backend Engineer" {
		t.Fatalf("unexpected joined details %+v", items[0])
	}
}

func TestGetReferralDanglingLinkMapsToNotFound(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	delete(f.candidates.candidates, 1)

	if _, err := f.svc.GetReferral(context.Background(), ref.ID); !errors.Is(err, ErrReferralNotFound) {
		t.Fatalf("expected ErrReferralNotFound, got %v", err)
	}
}

func TestUpdateReferralHireWithFeeCascades(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	hired := StatusHired
	fee := 25000.0
	updated, err := f.svc.UpdateReferral(context.Background(), ref.ID, UpdateReferralInput{
		Status:    &hired,
		FeeEarned: OptionalNullableFloat{Set: true, Value: &fee},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != StatusHired {
		t.Fatalf("expected status %q, got %q", StatusHired, updated.Status)
	}
	if updated.FeeEarned == nil || *updated.FeeEarned != fee {
		t.Fatalf("expected fee %v, got %v", fee, updated.FeeEarned)
	}

	if len(f.recorder.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(f.recorder.recorded))
	}
	entry := f.recorder.recorded[0]
	if entry.activityType != activity.TypeReferralUpdated {
		t.Fatalf("expected %q activity, got %q", activity.TypeReferralUpdated, entry.activityType)
	}
	if entry.description != "Received referral fee: ₪25000 for Dana Cohen" {
		t.Fatalf("unexpected description %q", entry.description)
	}

	if got := f.candidates.candidates[1].Status; got != candidate.StatusPlaced {
		t.Fatalf("expected candidate placed, got %q", got)
	}
}

func TestUpdateReferralHireCascadePlacesPrePatchCandidate(t *testing.T) {
	f := newFixture()
	f.candidates.candidates[2] = candidate.Candidate{ID: 2, FullName: "Yossi Levi", Email: "yossi@example.com", Status: candidate.StatusLooking}

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	// A single patch that both re-points the referral and hires: the
	// candidate it pointed at before the patch is the one placed.
	hired := StatusHired
	fee := 25000.0
	newCandidate := 2
	updated, err := f.svc.UpdateReferral(context.Background(), ref.ID, UpdateReferralInput{
		CandidateID: &newCandidate,
		Status:      &hired,
		FeeEarned:   OptionalNullableFloat{Set: true, Value: &fee},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.CandidateID != 2 {
		t.Fatalf("expected referral re-pointed to candidate 2, got %d", updated.CandidateID)
	}

	if got := f.candidates.candidates[1].Status; got != candidate.StatusPlaced {
		t.Fatalf("expected original candidate placed, got %q", got)
	}
	if got := f.candidates.candidates[2].Status; got != candidate.StatusLooking {
		t.Fatalf("expected new candidate untouched, got %q", got)
	}

	if len(f.recorder.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(f.recorder.recorded))
	}
	if got := f.recorder.recorded[0].description; got != "Received referral fee: ₪25000 for Dana Cohen" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestUpdateReferralHireWithoutFeeDoesNotCascade(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	hired := StatusHired
	if _, err := f.svc.UpdateReferral(context.Background(), ref.ID, UpdateReferralInput{Status: &hired}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(f.recorder.recorded) != 0 {
		t.Fatalf("expected no activities, got %d", len(f.recorder.recorded))
	}
	if got := f.candidates.candidates[1].Status; got != candidate.StatusLooking {
		t.Fatalf("expected candidate still looking, got %q", got)
	}
}

func TestUpdateReferralAlreadyHiredDoesNotCascadeAgain(t *testing.T) {
	f := newFixture()

	hired := StatusHired
	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1, Status: hired})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	fee := 25000.0
	if _, err := f.svc.UpdateReferral(context.Background(), ref.ID, UpdateReferralInput{
		Status:    &hired,
		FeeEarned: OptionalNullableFloat{Set: true, Value: &fee},
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(f.recorder.recorded) != 0 {
		t.Fatalf("expected no activities, got %d", len(f.recorder.recorded))
	}
}

func TestUpdateReferralZeroFeeDoesNotCascade(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	hired := StatusHired
	fee := 0.0
	if _, err := f.svc.UpdateReferral(context.Background(), ref.ID, UpdateReferralInput{
		Status:    &hired,
		FeeEarned: OptionalNullableFloat{Set: true, Value: &fee},
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(f.recorder.recorded) != 0 {
		t.Fatalf("expected no activities, got %d", len(f.recorder.recorded))
	}
	if got := f.candidates.candidates[1].Status; got != candidate.StatusLooking {
		t.Fatalf("expected candidate still looking, got %q", got)
	}
}

func TestUpdateReferralNotFound(t *testing.T) {
	f := newFixture()

	hired := StatusHired
	if _, err := f.svc.UpdateReferral(context.Background(), 42, UpdateReferralInput{Status: &hired}); !errors.Is(err, ErrReferralNotFound) {
		t.Fatalf("expected ErrReferralNotFound, got %v", err)
	}
}

func TestDeleteReferralRecordsActivity(t *testing.T) {
	f := newFixture()

	ref, err := f.svc.CreateReferral(context.Background(), CreateReferralInput{CandidateID: 1, PositionID: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f.recorder.recorded = nil

	if err := f.svc.DeleteReferral(context.Background(), ref.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := f.repo.referrals[ref.ID]; ok {
		t.Fatalf("expected referral deleted")
	}

	if len(f.recorder.recorded) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(f.recorder.recorded))
	}
	entry := f.recorder.recorded[0]
	if entry.activityType != activity.TypeReferralDeleted {
		t.Fatalf("expected %q activity, got %q", activity.TypeReferralDeleted, entry.activityType)
	}
	if entry.description != "Deleted referral: Dana Cohen for Backend Engineer at Acme" {
		t.Fatalf("unexpected description %q", entry.description)
	}
	if entry.relatedID != nil {
		t.Fatalf("expected nil related id on delete, got %v", *entry.relatedID)
	}
}

func TestDeleteReferralNotFound(t *testing.T) {
	f := newFixture()

	if err := f.svc.DeleteReferral(context.Background(), 42); !errors.Is(err, ErrReferralNotFound) {
		t.Fatalf("expected ErrReferralNotFound, got %v", err)
	}
}

func TestFeeFormatting(t *testing.T) {
	if got := formatFee(25000); got != "25000" {
		t.Fatalf("expected 25000, got %q", got)
	}
	if got := formatFee(12500.5); got != "12500.5" {
		t.Fatalf("expected 12500.5, got %q", got)
	}
}
