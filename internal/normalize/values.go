package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/pokecard/internal/domain"
)

// scalar flattens a decoded JSON value: integral numbers become int64,
// non-integral numbers float64, strings stay strings. Anything else
// (nil, bool, objects, arrays) is returned unchanged.
func scalar(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return scalar(f)
		}
		return n.String()
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1<<63 {
			return int64(n)
		}
		return n
	case float32:
		return scalar(float64(n))
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return v
}

// toValue converts a present field into a display Value. The bool result is
// false for shapes that cannot be displayed (booleans, objects, arrays).
func toValue(v any) (domain.Value, bool) {
	switch s := scalar(v).(type) {
	case int64:
		return domain.Int(s), true
	case float64:
		return domain.Text(strconv.FormatFloat(s, 'f', -1, 64)), true
	case string:
		return domain.Text(s), true
	}
	return domain.Missing(), false
}

// truthy mirrors the loose "is set" test the catalog's web client applies:
// null, false, 0 and "" count as unset.
func truthy(v any) bool {
	switch s := scalar(v).(type) {
	case nil:
		return false
	case bool:
		return s
	case int64:
		return s != 0
	case float64:
		return s != 0 && !math.IsNaN(s)
	case string:
		return s != ""
	}
	return true
}

func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, o != nil
	case domain.RawRecord:
		return o, o != nil
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, l != nil
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, l != nil
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, l != nil
	}
	return nil, false
}

func parseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}
