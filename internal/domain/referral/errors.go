package referral

import "errors"

var ErrReferralNotFound = errors.New("referral not found")
