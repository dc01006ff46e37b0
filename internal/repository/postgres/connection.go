package postgres

import (
	"context"

	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the champion tables. Parents precede children so the
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Champion{},
		&domain.ChampionTag{},
		&domain.ChampionAramMods{},
		&domain.ChampionSpellChange{},
		&domain.PatchLoad{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Champion:    NewChampionRepository(db),
		ChampionTag: NewChampionTagRepository(db),
		AramMods:    NewAramModsRepository(db),
		SpellChange: NewSpellChangeRepository(db),
		PatchLoad:   NewPatchLoadRepository(db),
		PatchLock:   NewPatchLockRepository(db),
	}
}

type unitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *unitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) WithinTransaction(ctx context.Context, fn func(tx *repository.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
