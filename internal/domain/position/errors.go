package position

import "errors"

var (
	ErrPositionNotFound     = errors.New("position not found")
	ErrPositionHasReferrals = errors.New("position has referrals")
)
