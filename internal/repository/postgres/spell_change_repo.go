package postgres

import (
	"context"

	"github.com/audwofla/Aramalyze/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type spellChangeRepository struct {
	db *gorm.DB
}

func NewSpellChangeRepository(db *gorm.DB) *spellChangeRepository {
	return &spellChangeRepository{db: db}
}

func (r *spellChangeRepository) Upsert(ctx context.Context, change *domain.ChampionSpellChange) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "champion_id"},
			{Name: "patch"},
			{Name: "spell_key"},
			{Name: "idx"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"change_text"}),
	}).Create(change).Error
}

func (r *spellChangeRepository) DeleteFrom(ctx context.Context, championID int64, patch, spellKey string, fromIdx int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("champion_id = ? AND patch = ? AND spell_key = ? AND idx >= ?", championID, patch, spellKey, fromIdx).
		Delete(&domain.ChampionSpellChange{})
	return result.RowsAffected, result.Error
}

func (r *spellChangeRepository) GetByChampionPatch(ctx context.Context, championID int64, patch string) ([]*domain.ChampionSpellChange, error) {
	var changes []*domain.ChampionSpellChange
	err := r.db.WithContext(ctx).
		Where("champion_id = ? AND patch = ?", championID, patch).
		Order("spell_key ASC").
		Order("idx ASC").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}
