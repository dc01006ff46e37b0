package service

import (
	"context"
	"fmt"

	"github.com/audwofla/Aramalyze/internal/canonical"
	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/repository"
	"github.com/audwofla/Aramalyze/internal/source"
)

// PatchService resolves which canonical document to load and feeds it to
// the loader.
type PatchService struct {
	loader    *LoaderService
	dir       *source.Directory
	patchRepo repository.PatchLoadRepository
	log       *logger.Logger
}

func NewPatchService(loader *LoaderService, dir *source.Directory, patchRepo repository.PatchLoadRepository, log *logger.Logger) *PatchService {
	return &PatchService{
		loader:    loader,
		dir:       dir,
		patchRepo: patchRepo,
		log:       log.With("service", "PatchService"),
	}
}

// Load loads one canonical document. With a location, that file is read and
// patch defaults to its file name. Without one, <dir>/<patch>.json is used,
// or the greatest-versioned document in the directory when patch is empty.
func (s *PatchService) Load(ctx context.Context, patch, location string) (*domain.LoadStats, error) {
	doc, err := s.locate(patch, location)
	if err != nil {
		return nil, err
	}

	log := s.log.With("patch", doc.Patch, "source", doc.Path)
	log.Info("Loading canonical document")

	payload, err := source.Read(doc.Path)
	if err != nil {
		return nil, err
	}

	entities, shape, err := canonical.ResolveShape(payload)
	if err != nil {
		log.Error("Unrecognized document shape", "error", err)
		return nil, err
	}

	stats, err := s.loader.LoadWithOptions(ctx, doc.Patch, entities, LoadOptions{
		Source: doc.Path,
		Shape:  shape,
	})
	if err != nil {
		log.Error("Load failed", "error", err)
		return nil, err
	}

	log.Info("Loaded patch",
		"shape", stats.Shape,
		"champions", stats.Champions,
		"tags", stats.Tags,
		"mods_rows", stats.ModsRows,
		"spell_rows", stats.SpellRows,
	)
	return stats, nil
}

func (s *PatchService) locate(patch, location string) (*source.Document, error) {
	switch {
	case location != "":
		if patch == "" {
			patch = source.PatchFromPath(location)
		}
		return &source.Document{Patch: patch, Path: location}, nil
	case patch != "":
		return s.dir.ForPatch(patch)
	default:
		return s.dir.Latest()
	}
}

// Available lists the canonical documents on disk, oldest first.
func (s *PatchService) Available() ([]source.Document, error) {
	return s.dir.List()
}

// LoadedPatches lists patches with at least one committed load, newest first.
func (s *PatchService) LoadedPatches(ctx context.Context) ([]string, error) {
	patches, err := s.patchRepo.ListPatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loaded patches: %w", err)
	}
	return patches, nil
}

func (s *PatchService) LastLoad(ctx context.Context, patch string) (*domain.PatchLoad, error) {
	return s.patchRepo.GetLatest(ctx, patch)
}
