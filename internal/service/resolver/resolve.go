package resolver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/pokecard/internal/domain"
	"github.com/heartmarshall/pokecard/internal/normalize"
	"github.com/heartmarshall/pokecard/internal/provider"
	"github.com/heartmarshall/pokecard/pkg/ctxutil"
)

// Resolve returns the raw catalog record for name, from the cache when a
// previous lookup stored it (case-insensitively), otherwise from the catalog.
//
// Cached payloads are returned verbatim; callers normalize on read, so both
// paths yield the same not-yet-normalized shape. Failures are returned as
// *domain.ValidationError (blank name) or *domain.LookupError.
func (s *Service) Resolve(ctx context.Context, name string) (domain.RawRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	// 1. Cache lookup. Read failures already degrade to a miss.
	if cached, ok := s.cache.Get(ctx, name); ok {
		ctxutil.SetCacheOutcome(ctx, ctxutil.CacheHit)
		return cached, nil
	}
	ctxutil.SetCacheOutcome(ctx, ctxutil.CacheMiss)

	// 2. Single catalog request, no retries.
	record, err := s.catalog.FetchRecord(ctx, name)
	if err != nil {
		lookupErr := classify(err)
		s.log.ErrorContext(ctx, "catalog lookup failed",
			slog.String("name", name),
			slog.String("kind", lookupErr.Kind.Error()),
			slog.String("error", err.Error()),
		)
		return nil, lookupErr
	}
	if record == nil {
		s.log.InfoContext(ctx, "name not in catalog", slog.String("name", name))
		return nil, domain.NewNotFoundError(nil)
	}

	// 3. Best-effort write of the raw payload.
	s.cache.Set(ctx, name, record)

	s.log.InfoContext(ctx, "record fetched and cached", slog.String("name", name))

	return record, nil
}

// ResolveCard resolves name and normalizes the result for display.
func (s *Service) ResolveCard(ctx context.Context, name string) (domain.CanonicalRecord, error) {
	raw, err := s.Resolve(ctx, name)
	if err != nil {
		return domain.CanonicalRecord{}, err
	}
	return normalize.Canonicalize(raw), nil
}

// Preload resolves name to warm the cache. Failures are logged at warn level
// and otherwise ignored. A blank name is a no-op.
func (s *Service) Preload(ctx context.Context, name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if _, err := s.Resolve(ctx, name); err != nil {
		s.log.WarnContext(ctx, "preload failed",
			slog.String("name", name),
			slog.String("error", domain.UserMessage(err)),
		)
	}
}

// classify maps catalog client failures onto the lookup error taxonomy.
func classify(err error) *domain.LookupError {
	if errors.Is(err, provider.ErrTransport) {
		return domain.NewNetworkError(err)
	}

	var statusErr *provider.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return domain.NewNotFoundError(err)
	}

	return domain.NewUpstreamError(err)
}
