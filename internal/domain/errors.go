package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// Lookup failure kinds. A *LookupError unwraps to exactly one of them.
var (
	ErrPokemonNotFound = errors.New("pokemon not found")
	ErrNetwork         = errors.New("network unreachable")
	ErrUpstream        = errors.New("upstream failure")
)

// User-facing messages attached to lookup failures.
const (
	MsgPokemonNotFound = "Pokémon introuvable. Vérifie l'orthographe."
	MsgNetwork         = "Erreur de connexion. Vérifie ta connexion internet."
	MsgUpstream        = "Erreur de connexion ou Pokémon introuvable. Réessaie plus tard."
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LookupError is returned when a name cannot be resolved to a record.
// Kind is one of ErrPokemonNotFound, ErrNetwork or ErrUpstream; Message is
// safe to show to end users; Err keeps the underlying cause for logs.
type LookupError struct {
	Kind    error
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewNotFoundError reports that the catalog does not know the name.
func NewNotFoundError(cause error) *LookupError {
	return &LookupError{Kind: ErrPokemonNotFound, Message: MsgPokemonNotFound, Err: cause}
}

// NewNetworkError reports that the catalog could not be reached at all.
func NewNetworkError(cause error) *LookupError {
	return &LookupError{Kind: ErrNetwork, Message: MsgNetwork, Err: cause}
}

// NewUpstreamError reports any other unsuccessful catalog response.
func NewUpstreamError(cause error) *LookupError {
	return &LookupError{Kind: ErrUpstream, Message: MsgUpstream, Err: cause}
}

// UserMessage returns the message to display for err. Lookup and validation
// errors carry their own text; anything else falls back to the upstream message.
func UserMessage(err error) string {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	return MsgUpstream
}
