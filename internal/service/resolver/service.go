package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pokecard/internal/domain"
)

type recordCache interface {
	Get(ctx context.Context, name string) (domain.RawRecord, bool)
	Set(ctx context.Context, name string, record domain.RawRecord)
}

type catalogProvider interface {
	FetchRecord(ctx context.Context, name string) (domain.RawRecord, error)
}

// Service resolves names to catalog records through the record cache.
// It holds no mutable state of its own and is safe for concurrent use.
type Service struct {
	log     *slog.Logger
	cache   recordCache
	catalog catalogProvider
}

// NewService creates a new resolver service.
func NewService(logger *slog.Logger, cache recordCache, catalog catalogProvider) *Service {
	return &Service{
		log:     logger.With("service", "resolver"),
		cache:   cache,
		catalog: catalog,
	}
}
