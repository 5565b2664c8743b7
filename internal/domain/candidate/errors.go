package candidate

import "errors"

var (
	ErrCandidateNotFound     = errors.New("candidate not found")
	ErrCandidateHasReferrals = errors.New("candidate has referrals")
)
