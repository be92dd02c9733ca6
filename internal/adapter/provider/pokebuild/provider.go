// Package pokebuild fetches raw Pokémon records from the PokéBuild catalog API.
package pokebuild

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/pokecard/internal/domain"
	"github.com/heartmarshall/pokecard/internal/provider"
)

// DefaultBaseURL is the public PokéBuild endpoint; names are appended to it.
const DefaultBaseURL = "https://pokebuildapi.fr/api/v1/pokemon/"

const defaultTimeout = 10 * time.Second

// Provider fetches catalog records over HTTP. It issues exactly one request
// per call and never retries.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for baseURL. A zero timeout leaves the
// request unbounded apart from the caller's context.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "pokebuild"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL and the default timeout (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(baseURL, defaultTimeout, logger)
}

// FetchRecord fetches the raw record for name.
// Returns nil, nil if the catalog does not know the name (HTTP 404).
// Transport failures wrap provider.ErrTransport, other non-2xx statuses are
// reported as *provider.StatusError, and bodies that are not a JSON object
// wrap provider.ErrMalformedBody.
func (p *Provider) FetchRecord(ctx context.Context, name string) (domain.RawRecord, error) {
	reqURL := p.baseURL + url.PathEscape(name)

	p.log.DebugContext(ctx, "pokebuild request", slog.String("name", name), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pokebuild: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "pokebuild request failed", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("pokebuild: %w: %w", provider.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.log.DebugContext(ctx, "pokebuild not found", slog.String("name", name))
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pokebuild: %w", &provider.StatusError{StatusCode: resp.StatusCode})
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var record domain.RawRecord
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("pokebuild: decode json: %w: %w", provider.ErrMalformedBody, err)
	}
	if record == nil {
		return nil, fmt.Errorf("pokebuild: %w: null body", provider.ErrMalformedBody)
	}

	p.log.DebugContext(ctx, "pokebuild response",
		slog.String("name", name),
		slog.Int("status", resp.StatusCode),
		slog.Int("fields", len(record)),
	)

	return record, nil
}
