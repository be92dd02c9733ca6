// Package normalize maps heterogeneous catalog payloads onto domain.CanonicalRecord.
// The catalog has shipped several response shapes over time; every extractor here
// degrades to placeholder values instead of failing, so any decoded JSON object is
// a valid input.
package normalize

import (
	"github.com/heartmarshall/pokecard/internal/domain"
)

// Canonicalize builds a display-ready record from a raw catalog payload.
// A nil record yields a fully placeholder-filled result.
func Canonicalize(raw domain.RawRecord) domain.CanonicalRecord {
	name := ExtractName(raw)

	altName := name
	if altName == "" {
		altName = domain.UnknownAlt
	}
	if name == "" {
		name = domain.UnknownName
	}

	image, _ := raw["image"].(string)

	return domain.CanonicalRecord{
		Name:       name,
		ID:         ExtractID(raw),
		ImageURL:   image,
		ImageAlt:   domain.ImageAltText + altName,
		Generation: ExtractGeneration(raw),
		Types:      ExtractTypes(raw),
		Stats:      ExtractStats(raw),
	}
}

// ExtractName returns the display name, or "" when the payload has none.
func ExtractName(raw domain.RawRecord) string {
	switch v := scalar(raw["name"]).(type) {
	case string:
		return v
	case int64:
		if v == 0 {
			return ""
		}
		return domain.Int(v).String()
	}
	return ""
}

// ExtractID returns the catalog id, or nil when absent or not an integer.
func ExtractID(raw domain.RawRecord) *int64 {
	switch v := scalar(raw["id"]).(type) {
	case int64:
		return &v
	case string:
		if n, ok := parseInt(v); ok {
			return &n
		}
	}
	return nil
}
