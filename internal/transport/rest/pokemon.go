package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pokecard/internal/domain"
)

// cardResolver resolves a name to a normalized card.
type cardResolver interface {
	ResolveCard(ctx context.Context, name string) (domain.CanonicalRecord, error)
}

// PokemonHandler serves card lookups.
type PokemonHandler struct {
	resolver cardResolver
	log      *slog.Logger
}

// NewPokemonHandler creates a PokemonHandler.
func NewPokemonHandler(resolver cardResolver, logger *slog.Logger) *PokemonHandler {
	return &PokemonHandler{
		resolver: resolver,
		log:      logger.With("handler", "pokemon"),
	}
}

// ErrorResponse is the JSON body of every failed lookup.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Register mounts the handler routes on mux.
func (h *PokemonHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/pokemon/{name}", h.Get)
}

// Get handles GET /api/v1/pokemon/{name}.
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.resolver.ResolveCard(r.Context(), r.PathValue("name"))
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "unexpected resolve error", slog.String("error", err.Error()))
			writeJSON(w, status, ErrorResponse{Error: "internal server error"})
			return
		}
		writeJSON(w, status, ErrorResponse{Error: domain.UserMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPokemonNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
