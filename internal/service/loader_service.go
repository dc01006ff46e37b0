package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/audwofla/Aramalyze/internal/canonical"
	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/repository"
	"github.com/google/uuid"
)

// LoadError wraps a storage failure. The load's transaction was rolled back.
type LoadError struct {
	Patch string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load patch %s: %v", e.Patch, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadOptions annotates a load with where its entities came from.
type LoadOptions struct {
	Source string
	Shape  string
}

type LoaderService struct {
	uow repository.UnitOfWork
	cfg config.LoaderConfig
	log *logger.Logger
	now func() time.Time
}

func NewLoaderService(uow repository.UnitOfWork, cfg config.LoaderConfig, log *logger.Logger) *LoaderService {
	return &LoaderService{
		uow: uow,
		cfg: cfg,
		log: log.With("service", "LoaderService"),
		now: time.Now,
	}
}

// Load writes every champion of entities for patch in one transaction.
// Non-object entries are skipped. A *canonical.FieldError or a *LoadError
// aborts the whole load and nothing is committed.
func (s *LoaderService) Load(ctx context.Context, patch string, entities map[string]any) (*domain.LoadStats, error) {
	return s.LoadWithOptions(ctx, patch, entities, LoadOptions{})
}

func (s *LoaderService) LoadWithOptions(ctx context.Context, patch string, entities map[string]any, opts LoadOptions) (*domain.LoadStats, error) {
	if patch == "" {
		return nil, fmt.Errorf("%w: empty", domain.ErrInvalidPatch)
	}

	var stats *domain.LoadStats
	err := s.uow.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if s.cfg.SerializePatchLoads {
			if err := tx.PatchLock.Lock(ctx, patch); err != nil {
				return fmt.Errorf("lock patch: %w", err)
			}
		}

		st, err := s.writeEntities(ctx, tx, patch, entities)
		if err != nil {
			return err
		}
		st.Source = opts.Source
		st.Shape = opts.Shape

		if err := s.recordLoad(ctx, tx, st); err != nil {
			return err
		}

		stats = st
		return nil
	})
	if err != nil {
		var fieldErr *canonical.FieldError
		var loadErr *LoadError
		if errors.As(err, &fieldErr) || errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &LoadError{Patch: patch, Err: err}
	}

	return stats, nil
}

func (s *LoaderService) writeEntities(ctx context.Context, tx *repository.Repositories, patch string, entities map[string]any) (*domain.LoadStats, error) {
	stats := &domain.LoadStats{Patch: patch}

	entries := make([]string, 0, len(entities))
	for k := range entities {
		entries = append(entries, k)
	}
	sort.Strings(entries)

	for _, entry := range entries {
		raw, ok := entities[entry].(map[string]any)
		if !ok {
			s.log.Debug("Skipping non-object entry", "patch", patch, "entry", entry)
			continue
		}

		rec, err := canonical.ParseChampion(entry, raw)
		if err != nil {
			return nil, err
		}

		if err := s.writeChampion(ctx, tx, patch, rec, stats); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// writeChampion writes the champion row before its children so the foreign
// keys of the child tables resolve.
func (s *LoaderService) writeChampion(ctx context.Context, tx *repository.Repositories, patch string, rec *canonical.ChampionRecord, stats *domain.LoadStats) error {
	champion := &domain.Champion{ID: rec.ID, Key: rec.Key, Name: rec.Name}
	if err := tx.Champion.Upsert(ctx, champion); err != nil {
		return fmt.Errorf("upsert champion %d: %w", rec.ID, err)
	}
	stats.Champions++

	for _, tag := range rec.Tags {
		inserted, err := tx.ChampionTag.Insert(ctx, &domain.ChampionTag{ChampionID: rec.ID, Tag: tag})
		if err != nil {
			return fmt.Errorf("insert tag %q for champion %d: %w", tag, rec.ID, err)
		}
		if inserted {
			stats.Tags++
		}
	}

	if rec.Mods != nil {
		mods := &domain.ChampionAramMods{
			ChampionID:   rec.ID,
			Patch:        patch,
			AbilityHaste: rec.Mods.AbilityHaste,
			DmgDealt:     rec.Mods.DmgDealt,
			DmgTaken:     rec.Mods.DmgTaken,
			Healing:      rec.Mods.Healing,
			Shielding:    rec.Mods.Shielding,
			Tenacity:     rec.Mods.Tenacity,
			AttackSpeed:  rec.Mods.AttackSpeed,
			EnergyRegen:  rec.Mods.EnergyRegen,
		}
		if err := tx.AramMods.Upsert(ctx, mods); err != nil {
			return fmt.Errorf("upsert aram mods for champion %d: %w", rec.ID, err)
		}
		stats.ModsRows++
	}

	for _, sc := range rec.SpellChanges {
		for idx, line := range sc.Lines {
			change := &domain.ChampionSpellChange{
				ChampionID: rec.ID,
				Patch:      patch,
				SpellKey:   sc.SpellKey,
				Idx:        idx,
				ChangeText: line,
			}
			if err := tx.SpellChange.Upsert(ctx, change); err != nil {
				return fmt.Errorf("upsert spell change %s[%d] for champion %d: %w", sc.SpellKey, idx, rec.ID, err)
			}
			stats.SpellRows++
		}

		if s.cfg.PruneStaleSpellChanges {
			pruned, err := tx.SpellChange.DeleteFrom(ctx, rec.ID, patch, sc.SpellKey, len(sc.Lines))
			if err != nil {
				return fmt.Errorf("prune spell changes %s for champion %d: %w", sc.SpellKey, rec.ID, err)
			}
			if pruned > 0 {
				s.log.Debug("Pruned stale spell changes", "patch", patch, "champion_id", rec.ID, "spell_key", sc.SpellKey, "rows", pruned)
			}
		}
	}

	return nil
}

func (s *LoaderService) recordLoad(ctx context.Context, tx *repository.Repositories, stats *domain.LoadStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal load stats: %w", err)
	}

	load := &domain.PatchLoad{
		ID:       uuid.New(),
		Patch:    stats.Patch,
		Source:   stats.Source,
		Stats:    statsJSON,
		LoadedAt: s.now().UTC(),
	}
	if err := tx.PatchLoad.Create(ctx, load); err != nil {
		return fmt.Errorf("record patch load: %w", err)
	}
	return nil
}
