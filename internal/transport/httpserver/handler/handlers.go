package handler

import (
	activitydomain "github.com/yurykissin/RecrutTrack/internal/domain/activity"
	candidatedomain "github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	dashboarddomain "github.com/yurykissin/RecrutTrack/internal/domain/dashboard"
	positiondomain "github.com/yurykissin/RecrutTrack/internal/domain/position"
	referraldomain "github.com/yurykissin/RecrutTrack/internal/domain/referral"
	userdomain "github.com/yurykissin/RecrutTrack/internal/domain/user"
	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver/middleware"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
)

type Handlers struct {
	Positions  *positiondomain.Service
	Candidates *candidatedomain.Service
	Referrals  *referraldomain.Service
	Activities *activitydomain.Service
	Dashboard  *dashboarddomain.Service
	Users      *userdomain.Service
	sessions   *middleware.SessionStore
	log        logger.Logger
}

func New(
	positions *positiondomain.Service,
	candidates *candidatedomain.Service,
	referrals *referraldomain.Service,
	activities *activitydomain.Service,
	dashboard *dashboarddomain.Service,
	users *userdomain.Service,
	sessions *middleware.SessionStore,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Positions:  positions,
		Candidates: candidates,
		Referrals:  referrals,
		Activities: activities,
		Dashboard:  dashboard,
		Users:      users,
		sessions:   sessions,
		log:        log,
	}
}
