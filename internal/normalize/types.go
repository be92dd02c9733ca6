package normalize

import (
	"github.com/heartmarshall/pokecard/internal/domain"
)

// ExtractTypes returns the record's type names in catalog order.
//
// apiTypes (a list of {name} objects) takes precedence whenever it is a list,
// whatever it contains. Otherwise types is read, where each element may be a
// {name} object or a bare string. Elements that fit neither shape become
// "Type". The result always has at least one entry.
func ExtractTypes(raw domain.RawRecord) []string {
	if primary, ok := asList(raw["apiTypes"]); ok {
		names := make([]string, 0, len(primary))
		for _, el := range primary {
			names = append(names, objectName(el))
		}
		return nonEmpty(names)
	}

	if secondary, ok := asList(raw["types"]); ok {
		names := make([]string, 0, len(secondary))
		for _, el := range secondary {
			if s, isString := el.(string); isString {
				names = append(names, s)
				continue
			}
			names = append(names, objectName(el))
		}
		return nonEmpty(names)
	}

	return []string{domain.Placeholder}
}

func objectName(el any) string {
	obj, ok := asObject(el)
	if !ok {
		return domain.UnknownType
	}
	if name, ok := obj["name"].(string); ok && name != "" {
		return name
	}
	return domain.UnknownType
}

func nonEmpty(names []string) []string {
	if len(names) == 0 {
		return []string{domain.Placeholder}
	}
	return names
}
