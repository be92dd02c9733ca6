package normalize

import (
	"github.com/heartmarshall/pokecard/internal/domain"
)

// ExtractGeneration prefers apiGeneration over generation. Numbers and strings
// pass through unchanged (the catalog sometimes sends "1ère génération");
// unset values (null, 0, "") fall through to the next field.
func ExtractGeneration(raw domain.RawRecord) domain.Value {
	for _, key := range []string{"apiGeneration", "generation"} {
		v := raw[key]
		if !truthy(v) {
			continue
		}
		if val, ok := toValue(v); ok {
			return val
		}
		return domain.Missing()
	}
	return domain.Missing()
}
