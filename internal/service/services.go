package service

import (
	"time"

	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/ddragon"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/repository"
	"github.com/audwofla/Aramalyze/internal/source"
)

type Services struct {
	Auth     *AuthService
	Champion *ChampionService
	Loader   *LoaderService
	Patch    *PatchService
	Asset    *AssetService
}

func NewServices(repos *repository.Repositories, uow repository.UnitOfWork, cfg *config.Config, log *logger.Logger) *Services {
	loader := NewLoaderService(uow, cfg.Loader, log)
	ddragonClient := ddragon.NewClient(cfg.DataDragon.BaseURL, cfg.DataDragon.Timeout)

	return &Services{
		Auth:     NewAuthService(cfg, time.Now),
		Champion: NewChampionService(repos),
		Loader:   loader,
		Patch:    NewPatchService(loader, source.NewDirectory(cfg.CanonicalDir), repos.PatchLoad, log),
		Asset:    NewAssetService(ddragonClient, cfg.DataDragon, log),
	}
}
