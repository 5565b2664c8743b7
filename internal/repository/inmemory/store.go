package inmemory

import (
	"sync"

	"github.com/yurykissin/RecrutTrack/internal/domain/activity"
	"github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	"github.com/yurykissin/RecrutTrack/internal/domain/position"
	"github.com/yurykissin/RecrutTrack/internal/domain/referral"
	"github.com/yurykissin/RecrutTrack/internal/domain/user"
)

// Store is a map-backed implementation of every domain repository, keyed by
// per-entity incrementing counters. It backs the test suites and the
// STORAGE_DRIVER=memory runtime mode.
type Store struct {
	mu sync.RWMutex

	positions  map[int]position.Position
	candidates map[int]candidate.Candidate
	referrals  map[int]referral.Referral
	activities map[int]activity.Activity
	users      map[int]user.User

	positionSeq  int
	candidateSeq int
	referralSeq  int
	activitySeq  int
	userSeq      int
}

func NewStore() *Store {
	return &Store{
		positions:  make(map[int]position.Position),
		candidates: make(map[int]candidate.Candidate),
		referrals:  make(map[int]referral.Referral),
		activities: make(map[int]activity.Activity),
		users:      make(map[int]user.User),
	}
}
