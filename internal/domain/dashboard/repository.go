package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	CountPositionsByStatus(ctx context.Context, status string) (int64, error)
	CountPositionsAddedAfter(ctx context.Context, after time.Time) (int64, error)
	CountCandidatesByStatus(ctx context.Context, status string) (int64, error)
	CountReferrals(ctx context.Context) (int64, error)
	CountReferralsAfter(ctx context.Context, after time.Time) (int64, error)
	// SumFeesEarned totals fee_earned over Hired referrals, null as zero.
	SumFeesEarned(ctx context.Context) (float64, error)
	SumFeesEarnedAfter(ctx context.Context, after time.Time) (float64, error)
	CountActivitiesByTypeAfter(ctx context.Context, activityType string, after time.Time) (int64, error)
}
