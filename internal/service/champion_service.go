package service

import (
	"context"
	"errors"

	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/repository"
)

type ChampionService struct {
	championRepo    repository.ChampionRepository
	tagRepo         repository.ChampionTagRepository
	aramModsRepo    repository.AramModsRepository
	spellChangeRepo repository.SpellChangeRepository
}

func NewChampionService(repos *repository.Repositories) *ChampionService {
	return &ChampionService{
		championRepo:    repos.Champion,
		tagRepo:         repos.ChampionTag,
		aramModsRepo:    repos.AramMods,
		spellChangeRepo: repos.SpellChange,
	}
}

type ChampionWithTags struct {
	*domain.Champion
	Tags []string
}

// ChampionPatch is everything loaded for one champion in one patch.
type ChampionPatch struct {
	Champion *domain.Champion
	Patch    string
	// nil when the patch carried no modifiers for the champion
	AramMods     *domain.ChampionAramMods
	SpellChanges map[string][]string
}

func (s *ChampionService) GetAllChampions(ctx context.Context) ([]*domain.Champion, error) {
	return s.championRepo.GetAll(ctx)
}

func (s *ChampionService) GetChampion(ctx context.Context, id int64) (*ChampionWithTags, error) {
	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetByChampionID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ChampionWithTags{Champion: champion, Tags: tags}, nil
}

// GetChampionPatch returns domain.ErrPatchDataNotFound when neither
// modifiers nor spell changes exist for the champion in patch.
func (s *ChampionService) GetChampionPatch(ctx context.Context, id int64, patch string) (*ChampionPatch, error) {
	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &ChampionPatch{
		Champion:     champion,
		Patch:        patch,
		SpellChanges: map[string][]string{},
	}

	mods, err := s.aramModsRepo.Get(ctx, id, patch)
	switch {
	case err == nil:
		result.AramMods = mods
	case !errors.Is(err, domain.ErrPatchDataNotFound):
		return nil, err
	}

	changes, err := s.spellChangeRepo.GetByChampionPatch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	for _, c := range changes {
		result.SpellChanges[c.SpellKey] = append(result.SpellChanges[c.SpellKey], c.ChangeText)
	}

	if result.AramMods == nil && len(changes) == 0 {
		return nil, domain.ErrPatchDataNotFound
	}
	return result, nil
}
