package postgres

import (
	"context"
	"errors"

	"github.com/audwofla/Aramalyze/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aramModsRepository struct {
	db *gorm.DB
}

func NewAramModsRepository(db *gorm.DB) *aramModsRepository {
	return &aramModsRepository{db: db}
}

// Upsert replaces every modifier column, writing NULL for nil fields.
func (r *aramModsRepository) Upsert(ctx context.Context, mods *domain.ChampionAramMods) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}, {Name: "patch"}},
		DoUpdates: clause.AssignmentColumns(domain.AramModColumns),
	}).Create(mods).Error
}

func (r *aramModsRepository) Get(ctx context.Context, championID int64, patch string) (*domain.ChampionAramMods, error) {
	var mods domain.ChampionAramMods
	err := r.db.WithContext(ctx).
		Where("champion_id = ? AND patch = ?", championID, patch).
		First(&mods).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPatchDataNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mods, nil
}
