package candidate

import "context"

type Repository interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidateByID(ctx context.Context, id int) (*Candidate, error)
	CreateCandidate(ctx context.Context, cand *Candidate) error
	UpdateCandidate(ctx context.Context, cand *Candidate) error
	DeleteCandidate(ctx context.Context, id int) (bool, error)
}
