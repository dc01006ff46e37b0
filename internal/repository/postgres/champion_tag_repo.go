package postgres

import (
	"context"

	"github.com/audwofla/Aramalyze/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championTagRepository struct {
	db *gorm.DB
}

func NewChampionTagRepository(db *gorm.DB) *championTagRepository {
	return &championTagRepository{db: db}
}

func (r *championTagRepository) Insert(ctx context.Context, tag *domain.ChampionTag) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}, {Name: "tag"}},
		DoNothing: true,
	}).Create(tag)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *championTagRepository) GetByChampionID(ctx context.Context, championID int64) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).
		Model(&domain.ChampionTag{}).
		Where("champion_id = ?", championID).
		Order("tag ASC").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
