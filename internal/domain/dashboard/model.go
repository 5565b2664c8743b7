package dashboard

// Stats is the point-in-time dashboard aggregate. MonthlyChange is new
// activity inside the trailing calendar month, not a delta between two
// snapshots.
type Stats struct {
	OpenPositions    int64         `json:"openPositions"`
	ActiveCandidates int64         `json:"activeCandidates"`
	ReferralsMade    int64         `json:"referralsMade"`
	FeesEarned       float64       `json:"feesEarned"`
	MonthlyChange    MonthlyChange `json:"monthlyChange"`
}

type MonthlyChange struct {
	OpenPositions    int64   `json:"openPositions"`
	ActiveCandidates int64   `json:"activeCandidates"`
	ReferralsMade    int64   `json:"referralsMade"`
	FeesEarned       float64 `json:"feesEarned"`
}
