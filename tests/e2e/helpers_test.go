//go:build e2e

package e2e_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgkv "github.com/heartmarshall/pokecard/internal/adapter/postgres/kv"
	"github.com/heartmarshall/pokecard/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/pokecard/internal/adapter/provider/pokebuild"
	"github.com/heartmarshall/pokecard/internal/app"
	"github.com/heartmarshall/pokecard/internal/config"
	"github.com/heartmarshall/pokecard/internal/service/recordcache"
	"github.com/heartmarshall/pokecard/internal/service/resolver"
)

// ---------------------------------------------------------------------------
// fakeCatalog stands in for the remote catalog API.
// ---------------------------------------------------------------------------

type fakeCatalog struct {
	srv   *httptest.Server
	calls atomic.Int32

	mu      sync.Mutex
	records map[string]string
	status  int
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	c := &fakeCatalog{records: map[string]string{
		"pikachu": `{"id":25,"name":"Pikachu","image":"https://img/25.png","apiGeneration":1,` +
			`"apiTypes":[{"name":"Électrik"}],"stats":{"HP":35,"attack":55,"defense":40,` +
			`"special_attack":50,"special_defense":50,"speed":90}}`,
		"gruikui": `{"id":498,"name":"Gruikui","generation":5,"types":["Feu"],"stats":{"hp":65,"Attack":63}}`,
		"ghost":   `{"name":"","stats":{}}`,
	}}
	c.srv = httptest.NewServer(http.HandlerFunc(c.serve))
	t.Cleanup(c.srv.Close)
	return c
}

func (c *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	c.calls.Add(1)

	c.mu.Lock()
	status := c.status
	body, ok := c.records[strings.ToLower(strings.TrimPrefix(r.URL.Path, "/"))]
	c.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

// failWith makes every following request answer status.
func (c *fakeCatalog) failWith(status int) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Catalog *fakeCatalog
	Prefix  string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL cache (shared container via testhelper). Each test gets its own
// key prefix so tests sharing the container do not see each other's entries.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	catalog := newFakeCatalog(t)
	prefix := "e2e_" + strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_")) + "_"

	return startServer(t, pool, catalog, prefix)
}

// startServer wires a server over an existing pool and catalog.
func startServer(t *testing.T, pool *pgxpool.Pool, catalog *fakeCatalog, prefix string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Catalog: config.CatalogConfig{BaseURL: catalog.srv.URL},
		Cache:   config.CacheConfig{Driver: config.CacheDriverPostgres, KeyPrefix: prefix},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		},
	}

	store := recordcache.NewStore(logger, pgkv.New(pool), prefix)
	comps := &app.Components{
		Cache:    store,
		Resolver: resolver.NewService(logger, store, pokebuild.NewProviderWithURL(catalog.srv.URL, logger)),
	}

	srv := httptest.NewServer(app.NewHandler(cfg, logger, comps))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Catalog: catalog,
		Prefix:  prefix,
	}
}

// get issues a GET and decodes the JSON body.
func (ts *testServer) get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}
