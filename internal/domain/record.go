package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Placeholder is displayed in place of any field the catalog did not provide.
const Placeholder = "—"

// Fallbacks used when the catalog omits a record's identity fields.
const (
	UnknownName  = "Inconnu"
	UnknownAlt   = "Pokémon"
	UnknownType  = "Type"
	ImageAltText = "Image de "
)

// RawRecord is an upstream catalog payload exactly as decoded from JSON.
// Field shapes vary between catalog versions, so nothing outside the
// normalize package should read individual fields from it.
type RawRecord map[string]any

// ValueKind tells which variant a Value holds.
type ValueKind uint8

const (
	ValuePlaceholder ValueKind = iota
	ValueInt
	ValueText
)

// Value is a display scalar: an integer, a string, or the placeholder.
// The zero Value is the placeholder.
type Value struct {
	kind ValueKind
	num  int64
	text string
}

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: ValueInt, num: n} }

// Text returns a string Value.
func Text(s string) Value { return Value{kind: ValueText, text: s} }

// Missing returns the placeholder Value.
func Missing() Value { return Value{} }

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsPlaceholder reports whether v stands for an unavailable field.
func (v Value) IsPlaceholder() bool { return v.kind == ValuePlaceholder }

// Int64 returns the integer held by v, if any.
func (v Value) Int64() (int64, bool) {
	return v.num, v.kind == ValueInt
}

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueText:
		return v.text
	default:
		return Placeholder
	}
}

// MarshalJSON encodes integers as JSON numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueInt {
		return []byte(strconv.FormatInt(v.num, 10)), nil
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON number, a string, or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Missing()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == Placeholder {
			*v = Missing()
			return nil
		}
		*v = Text(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("value: expected integer, string or null, got %s", data)
	}
	*v = Int(n)
	return nil
}

// Stats holds the six base stats of a record.
type Stats struct {
	HP             Value `json:"hp"`
	Attack         Value `json:"attack"`
	Defense        Value `json:"defense"`
	SpecialAttack  Value `json:"specialAttack"`
	SpecialDefense Value `json:"specialDefense"`
	Speed          Value `json:"speed"`
}

// CanonicalRecord is the normalized, placeholder-filled form of a catalog
// record, ready for display. Every field is always set and Types is never empty.
type CanonicalRecord struct {
	Name       string   `json:"name"`
	ID         *int64   `json:"id"`
	ImageURL   string   `json:"imageUrl"`
	ImageAlt   string   `json:"imageAlt"`
	Generation Value    `json:"generation"`
	Types      []string `json:"types"`
	Stats      Stats    `json:"stats"`
}

// DisplayID renders the record id or the placeholder.
func (r CanonicalRecord) DisplayID() string {
	if r.ID == nil {
		return Placeholder
	}
	return strconv.FormatInt(*r.ID, 10)
}
