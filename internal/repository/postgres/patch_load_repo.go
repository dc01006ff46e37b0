package postgres

import (
	"context"
	"errors"
	"hash/fnv"
	"sort"

	"github.com/audwofla/Aramalyze/internal/domain"
	"gorm.io/gorm"
)

type patchLoadRepository struct {
	db *gorm.DB
}

func NewPatchLoadRepository(db *gorm.DB) *patchLoadRepository {
	return &patchLoadRepository{db: db}
}

func (r *patchLoadRepository) Create(ctx context.Context, load *domain.PatchLoad) error {
	return r.db.WithContext(ctx).Create(load).Error
}

// ListPatches returns every loaded patch, newest version first.
func (r *patchLoadRepository) ListPatches(ctx context.Context) ([]string, error) {
	var patches []string
	err := r.db.WithContext(ctx).
		Model(&domain.PatchLoad{}).
		Distinct("patch").
		Pluck("patch", &patches).Error
	if err != nil {
		return nil, err
	}

	sort.Slice(patches, func(i, j int) bool {
		return domain.ComparePatches(patches[i], patches[j]) > 0
	})
	return patches, nil
}

func (r *patchLoadRepository) GetLatest(ctx context.Context, patch string) (*domain.PatchLoad, error) {
	var load domain.PatchLoad
	err := r.db.WithContext(ctx).
		Where("patch = ?", patch).
		Order("loaded_at DESC").
		First(&load).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPatchDataNotFound
	}
	if err != nil {
		return nil, err
	}
	return &load, nil
}

type patchLockRepository struct {
	db *gorm.DB
}

func NewPatchLockRepository(db *gorm.DB) *patchLockRepository {
	return &patchLockRepository{db: db}
}

// Lock takes a transaction-scoped advisory lock on PostgreSQL. Other
// dialects serialize writers on their own, so the call is a no-op there.
func (r *patchLockRepository) Lock(ctx context.Context, patch string) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", patchLockKey(patch)).Error
}

func patchLockKey(patch string) int64 {
	h := fnv.New64a()
	h.Write([]byte("aramalyze:patch:" + patch))
	return int64(h.Sum64())
}
