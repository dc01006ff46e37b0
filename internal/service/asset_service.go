package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/ddragon"
	"github.com/audwofla/Aramalyze/internal/logger"
	"golang.org/x/sync/errgroup"
)

// AssetService mirrors champion metadata and images from Data Dragon into
// a local directory tree:
//
//	<dir>/raw/<version>/ddragon_champions.json
//	<dir>/icons/<version>/<image>
//	<dir>/splashes/<version>/<id>_0.jpg
type AssetService struct {
	client *ddragon.Client
	cfg    config.DataDragonConfig
	log    *logger.Logger
}

func NewAssetService(client *ddragon.Client, cfg config.DataDragonConfig, log *logger.Logger) *AssetService {
	return &AssetService{
		client: client,
		cfg:    cfg,
		log:    log.With("service", "AssetService"),
	}
}

type SyncResult struct {
	Version    string `json:"version"`
	Champions  int    `json:"champions"`
	Downloaded int    `json:"downloaded"`
	Skipped    int    `json:"skipped"`
	RawPath    string `json:"rawPath"`
}

// Sync downloads the configured (or latest) version. Files already on disk
// are kept as they are.
func (s *AssetService) Sync(ctx context.Context) (*SyncResult, error) {
	version, err := s.version(ctx)
	if err != nil {
		return nil, err
	}
	log := s.log.With("version", version)

	raw, err := s.client.ChampionsRaw(ctx, version)
	if err != nil {
		return nil, err
	}

	var champions ddragon.ChampionsResponse
	if err := json.Unmarshal(raw, &champions); err != nil {
		return nil, fmt.Errorf("failed to decode champions: %w", err)
	}

	rawPath := filepath.Join(s.cfg.Dir, "raw", version, "ddragon_champions.json")
	if err := writeIndented(rawPath, raw); err != nil {
		return nil, fmt.Errorf("failed to save raw champions: %w", err)
	}

	iconDir := filepath.Join(s.cfg.Dir, "icons", version)
	splashDir := filepath.Join(s.cfg.Dir, "splashes", version)

	ids := make([]string, 0, len(champions.Data))
	for id := range champions.Data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var downloaded, skipped atomic.Int64
	fetch := func(ctx context.Context, url, path string) error {
		wrote, err := s.client.Download(ctx, url, path)
		if err != nil {
			return fmt.Errorf("download %s: %w", url, err)
		}
		if wrote {
			downloaded.Add(1)
		} else {
			skipped.Add(1)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for _, id := range ids {
		champ := champions.Data[id]
		if champ.Image.Full != "" {
			g.Go(func() error {
				return fetch(gctx, s.client.IconURL(version, champ.Image.Full), filepath.Join(iconDir, champ.Image.Full))
			})
		}
		g.Go(func() error {
			return fetch(gctx, s.client.SplashURL(champ.ID), filepath.Join(splashDir, champ.ID+"_0.jpg"))
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Asset sync failed", "error", err)
		return nil, err
	}

	result := &SyncResult{
		Version:    version,
		Champions:  len(ids),
		Downloaded: int(downloaded.Load()),
		Skipped:    int(skipped.Load()),
		RawPath:    rawPath,
	}
	log.Info("Synced Data Dragon assets", "champions", result.Champions, "downloaded", result.Downloaded, "skipped", result.Skipped)
	return result, nil
}

func (s *AssetService) version(ctx context.Context) (string, error) {
	if s.cfg.Version != "" {
		return s.cfg.Version, nil
	}
	return s.client.LatestVersion(ctx)
}

func writeIndented(path string, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
