package cli

import (
	"fmt"

	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/repository/postgres"
	"github.com/audwofla/Aramalyze/internal/repository/sqlite"
	"github.com/audwofla/Aramalyze/internal/service"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// runtime holds the wired dependencies shared by commands.
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *gorm.DB
	services *service.Services
}

func newRuntime(configPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Debug("Database ready", "driver", cfg.Database.Driver)

	repos := postgres.NewRepositories(db)
	uow := postgres.NewUnitOfWork(db)

	return &runtime{
		cfg:      cfg,
		log:      log,
		db:       db,
		services: service.NewServices(repos, uow, cfg, log),
	}, nil
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.NewConnection(cfg.URL, gormLogger.Warn)
	default:
		return postgres.NewConnection(cfg.URL)
	}
}

func (rt *runtime) Close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		sqlDB.Close()
	}
	rt.log.Sync()
}
