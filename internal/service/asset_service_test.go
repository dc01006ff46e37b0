package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/ddragon"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const championJSON = `{
	"type": "champion",
	"version": "14.10.1",
	"data": {
		"Aatrox": {"id": "Aatrox", "key": "266", "name": "Aatrox", "tags": ["Fighter"], "image": {"full": "Aatrox.png"}},
		"Ahri": {"id": "Ahri", "key": "103", "name": "Ahri", "tags": ["Mage"], "image": {"full": "Ahri.png"}}
	}
}`

func newDataDragonServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch {
		case r.URL.Path == "/api/versions.json":
			w.Write([]byte(`["14.10.1","14.9.1"]`))
		case r.URL.Path == "/cdn/14.10.1/data/en_US/champion.json":
			w.Write([]byte(championJSON))
		case strings.HasPrefix(r.URL.Path, "/cdn/"):
			w.Write([]byte("image:" + filepath.Base(r.URL.Path)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAssetService(baseURL, dir, version string) *service.AssetService {
	cfg := config.DataDragonConfig{
		BaseURL:     baseURL,
		Version:     version,
		Dir:         dir,
		Concurrency: 2,
		Timeout:     5 * time.Second,
	}
	return service.NewAssetService(ddragon.NewClient(cfg.BaseURL, cfg.Timeout), cfg, logger.NewNop())
}

func TestAssetService_Sync(t *testing.T) {
	var requests atomic.Int64
	srv := newDataDragonServer(t, &requests)
	dir := t.TempDir()
	assets := newAssetService(srv.URL, dir, "")

	result, err := assets.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.10.1", result.Version)
	assert.Equal(t, 2, result.Champions)
	assert.Equal(t, 4, result.Downloaded)
	assert.Equal(t, 0, result.Skipped)

	raw, err := os.ReadFile(result.RawPath)
	require.NoError(t, err)
	var champions ddragon.ChampionsResponse
	require.NoError(t, json.Unmarshal(raw, &champions))
	assert.Equal(t, "266", champions.Data["Aatrox"].Key)

	icon, err := os.ReadFile(filepath.Join(dir, "icons", "14.10.1", "Ahri.png"))
	require.NoError(t, err)
	assert.Equal(t, "image:Ahri.png", string(icon))
	assert.FileExists(t, filepath.Join(dir, "splashes", "14.10.1", "Aatrox_0.jpg"))

	// Second run only refetches metadata
	before := requests.Load()
	result, err = assets.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Downloaded)
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, int64(2), requests.Load()-before)
}

func TestAssetService_Sync_PinnedVersion(t *testing.T) {
	var requests atomic.Int64
	srv := newDataDragonServer(t, &requests)

	_, err := newAssetService(srv.URL, t.TempDir(), "13.1.1").Sync(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}
