package repository

import (
	"context"

	"github.com/audwofla/Aramalyze/internal/domain"
)

type ChampionRepository interface {
	Upsert(ctx context.Context, champion *domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id int64) (*domain.Champion, error)
}

type ChampionTagRepository interface {
	// Insert adds the pair and reports whether a new row was written.
	Insert(ctx context.Context, tag *domain.ChampionTag) (bool, error)
	GetByChampionID(ctx context.Context, championID int64) ([]string, error)
}

type AramModsRepository interface {
	Upsert(ctx context.Context, mods *domain.ChampionAramMods) error
	Get(ctx context.Context, championID int64, patch string) (*domain.ChampionAramMods, error)
}

type SpellChangeRepository interface {
	Upsert(ctx context.Context, change *domain.ChampionSpellChange) error
	// DeleteFrom removes every index >= fromIdx for one ability.
	DeleteFrom(ctx context.Context, championID int64, patch, spellKey string, fromIdx int) (int64, error)
	GetByChampionPatch(ctx context.Context, championID int64, patch string) ([]*domain.ChampionSpellChange, error)
}

type PatchLoadRepository interface {
	Create(ctx context.Context, load *domain.PatchLoad) error
	ListPatches(ctx context.Context) ([]string, error)
	GetLatest(ctx context.Context, patch string) (*domain.PatchLoad, error)
}

type PatchLockRepository interface {
	// Lock blocks until the calling transaction holds the lock for patch.
	// The lock is released when the transaction ends.
	Lock(ctx context.Context, patch string) error
}

// UnitOfWork runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(tx *Repositories) error) error
}

type Repositories struct {
	Champion    ChampionRepository
	ChampionTag ChampionTagRepository
	AramMods    AramModsRepository
	SpellChange SpellChangeRepository
	PatchLoad   PatchLoadRepository
	PatchLock   PatchLockRepository
}
