package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yurykissin/RecrutTrack/internal/config"
	"github.com/yurykissin/RecrutTrack/internal/db"
	activitydomain "github.com/yurykissin/RecrutTrack/internal/domain/activity"
	candidatedomain "github.com/yurykissin/RecrutTrack/internal/domain/candidate"
	dashboarddomain "github.com/yurykissin/RecrutTrack/internal/domain/dashboard"
	positiondomain "github.com/yurykissin/RecrutTrack/internal/domain/position"
	referraldomain "github.com/yurykissin/RecrutTrack/internal/domain/referral"
	userdomain "github.com/yurykissin/RecrutTrack/internal/domain/user"
	"github.com/yurykissin/RecrutTrack/internal/repository/inmemory"
	activitypg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/activity"
	candidatepg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/candidate"
	dashboardpg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/dashboard"
	positionpg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/position"
	referralpg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/referral"
	userpg "github.com/yurykissin/RecrutTrack/internal/repository/postgres/user"
	"github.com/yurykissin/RecrutTrack/internal/seed"
	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver"
	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver/handler"
	"github.com/yurykissin/RecrutTrack/internal/transport/httpserver/middleware"
	"github.com/yurykissin/RecrutTrack/pkg/logger"
	"gorm.io/gorm"
)

type repositories struct {
	positions  positiondomain.Repository
	candidates candidatedomain.Repository
	referrals  referraldomain.Repository
	activities activitydomain.Repository
	dashboard  dashboarddomain.Repository
	users      userdomain.Repository
}

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var (
		repos  repositories
		dbConn *gorm.DB
	)
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		log.Info("app: initializing database")
		dbConn, err = db.NewPostgres(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.Migrate(dbConn); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		repos = repositories{
			positions:  positionpg.NewPostgres(dbConn),
			candidates: candidatepg.NewPostgres(dbConn),
			referrals:  referralpg.NewPostgres(dbConn),
			activities: activitypg.NewPostgres(dbConn),
			dashboard:  dashboardpg.NewPostgres(dbConn),
			users:      userpg.NewPostgres(dbConn),
		}
	case config.StorageDriverMemory:
		log.Info("app: using in-memory storage")
		store := inmemory.NewStore()
		repos = repositories{
			positions:  store,
			candidates: store,
			referrals:  store,
			activities: store,
			dashboard:  store,
			users:      store,
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	activities := activitydomain.NewService(repos.activities, log)
	positions := positiondomain.NewService(repos.positions, repos.referrals, activities)
	candidates := candidatedomain.NewService(repos.candidates, repos.referrals, activities)
	referrals := referraldomain.NewService(repos.referrals, candidates, positions, activities, log)
	dashboard := dashboarddomain.NewService(repos.dashboard)
	users := userdomain.NewService(repos.users)

	if cfg.SeedDemo {
		if err := seed.Demo(context.Background(), positions, candidates, referrals, log); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	sessions := middleware.NewSessionStore(cfg.Session.CookieName, cfg.Session.TTL)
	handlers := handler.New(positions, candidates, referrals, activities, dashboard, users, sessions, log)

	log.Info("app: initializing http server")
	router := httpserver.NewRouter(handlers, sessions)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
