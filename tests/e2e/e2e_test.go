//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pokecard/internal/domain"
)

func TestE2E_LiveEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/live")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_ReadyEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/ready")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_HealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")

	cache, ok := components["cache"].(map[string]any)
	require.True(t, ok, "expected cache component")
	assert.Equal(t, "ok", cache["status"])
}

func TestE2E_LookupStoresRawPayload(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/api/v1/pokemon/Pikachu")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Pikachu", body["name"])
	assert.Equal(t, float64(25), body["id"])
	assert.Equal(t, "Image de Pikachu", body["imageAlt"])
	assert.Equal(t, []any{"Électrik"}, body["types"])

	// The cached row holds the catalog payload, not the normalized card.
	var payload string
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT payload FROM record_cache WHERE cache_key = $1`, ts.Prefix+"pikachu").Scan(&payload)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	assert.Contains(t, raw, "apiTypes")
	assert.NotContains(t, raw, "imageAlt")
}

func TestE2E_CaseInsensitiveCacheHit(t *testing.T) {
	ts := setupTestServer(t)

	status1, first := ts.get(t, "/api/v1/pokemon/Pikachu")
	status2, second := ts.get(t, "/api/v1/pokemon/PIKACHU")

	require.Equal(t, http.StatusOK, status1)
	require.Equal(t, http.StatusOK, status2)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), ts.Catalog.calls.Load())
}

func TestE2E_CacheSurvivesRestart(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.get(t, "/api/v1/pokemon/gruikui")
	require.Equal(t, http.StatusOK, status)

	// Catalog goes down; a new server over the same database still answers.
	ts.Catalog.failWith(http.StatusInternalServerError)
	restarted := startServer(t, ts.Pool, ts.Catalog, ts.Prefix)

	status, body := restarted.get(t, "/api/v1/pokemon/Gruikui")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Gruikui", body["name"])
	assert.Equal(t, float64(5), body["generation"])
	assert.Equal(t, []any{"Feu"}, body["types"])
	assert.Equal(t, int32(1), ts.Catalog.calls.Load())
}

func TestE2E_PlaceholderCard(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/api/v1/pokemon/ghost")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.UnknownName, body["name"])
	assert.Nil(t, body["id"])
	assert.Equal(t, "Image de Pokémon", body["imageAlt"])
	assert.Equal(t, []any{domain.Placeholder}, body["types"])

	stats := body["stats"].(map[string]any)
	for _, key := range []string{"hp", "attack", "defense", "specialAttack", "specialDefense", "speed"} {
		assert.Equal(t, domain.Placeholder, stats[key], key)
	}
}

func TestE2E_ErrorMapping(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.get(t, "/api/v1/pokemon/missingno")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.MsgPokemonNotFound, body["error"])

	ts.Catalog.failWith(http.StatusServiceUnavailable)
	status, body = ts.get(t, "/api/v1/pokemon/pikachu")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, domain.MsgUpstream, body["error"])

	ts.Catalog.srv.Close()
	status, body = ts.get(t, "/api/v1/pokemon/pikachu")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, domain.MsgNetwork, body["error"])
}

func TestE2E_ConcurrentLookups(t *testing.T) {
	ts := setupTestServer(t)

	var wg sync.WaitGroup
	statuses := make([]int, 10)
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := ts.Client.Get(ts.URL + "/api/v1/pokemon/pikachu")
			if err != nil {
				return
			}
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i, s := range statuses {
		assert.Equal(t, http.StatusOK, s, "request %d", i)
	}

	var count int
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT count(*) FROM record_cache WHERE cache_key = $1`, ts.Prefix+"pikachu").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "concurrent writers upsert a single row")
}
