package normalize

import (
	"github.com/heartmarshall/pokecard/internal/domain"
)

// Candidate field spellings per stat, in priority order.
var (
	hpKeys             = []string{"HP", "hp"}
	attackKeys         = []string{"attack", "Attack"}
	defenseKeys        = []string{"defense", "Defense"}
	specialAttackKeys  = []string{"special_attack", "specialAttack", "special-attack"}
	specialDefenseKeys = []string{"special_defense", "specialDefense", "special-defense"}
	speedKeys          = []string{"speed", "Speed"}
)

// ExtractStats reads the six base stats from the record's stats object.
// Each slot takes the first candidate spelling whose value is set; 0 counts
// as set. Without a stats object every slot is the placeholder.
func ExtractStats(raw domain.RawRecord) domain.Stats {
	s, ok := asObject(raw["stats"])
	if !ok {
		return domain.Stats{}
	}

	return domain.Stats{
		HP:             firstPresent(s, hpKeys),
		Attack:         firstPresent(s, attackKeys),
		Defense:        firstPresent(s, defenseKeys),
		SpecialAttack:  firstPresent(s, specialAttackKeys),
		SpecialDefense: firstPresent(s, specialDefenseKeys),
		Speed:          firstPresent(s, speedKeys),
	}
}

func firstPresent(obj map[string]any, keys []string) domain.Value {
	for _, k := range keys {
		v, exists := obj[k]
		if !exists || v == nil {
			continue
		}
		if val, ok := toValue(v); ok {
			return val
		}
	}
	return domain.Missing()
}
