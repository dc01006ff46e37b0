package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/audwofla/Aramalyze/internal/api/handlers"
	"github.com/audwofla/Aramalyze/internal/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "empty database",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result handlers.ChampionsResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Empty(t, result.Champions)
			},
		},
		{
			name: "with champions",
			setup: func() {
				testutil.SeedChampions(t, ts.DB.DB, 5)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result handlers.ChampionsResponse
				testutil.AssertJSONResponse(t, resp, &result)
				require.Len(t, result.Champions, 5)
				assert.Equal(t, "Ahri", result.Champions[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp, err := http.Get(ts.APIURL("/champions"))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestChampionHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, err := ts.Services.Loader.Load(context.Background(), "14.1", testutil.EntityMap(
		testutil.NewChampionBuilder().WithTags("Tank", "Mage"),
	))
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "existing champion", path: "/champions/57", expectedStatus: http.StatusOK},
		{name: "unknown champion", path: "/champions/9999", expectedStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/champions/Maokai", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL(tt.path))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var result handlers.ChampionResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, int64(57), result.ID)
			assert.Equal(t, []string{"Mage", "Tank"}, result.Tags)
		})
	}
}

func TestChampionHandler_GetForPatch(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, err := ts.Services.Loader.Load(context.Background(), "14.10", testutil.EntityMap(
		testutil.NewChampionBuilder().
			WithTags("Tank").
			WithAramMod("dmg_dealt", 1.05).
			WithAramMod("dmg_taken", 0.95).
			WithSpellChanges("Q", "a", "b").
			WithSpellChanges("E", "new passive"),
	))
	require.NoError(t, err)

	resp, err := http.Get(ts.APIURL("/patches/14.10/champions/57"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result handlers.ChampionPatchResponse
	testutil.AssertJSONResponse(t, resp, &result)

	g := goldie.New(t)
	g.AssertJson(t, "champion_patch", result)

	missing, err := http.Get(ts.APIURL("/patches/14.9/champions/57"))
	require.NoError(t, err)
	defer missing.Body.Close()
	testutil.AssertErrorResponse(t, missing, http.StatusNotFound, "No data for champion in patch")
}
