// Package nodetype classifies decoded JSON values by their JSON type.
package nodetype

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownType = errors.New("nodetype: unknown type")

type Type int

const (
	Array Type = iota
	Boolean
	Integer
	Null
	Number
	Object
	String
)

var names = [...]string{
	Array:   "array",
	Boolean: "boolean",
	Integer: "integer",
	Null:    "null",
	Number:  "number",
	Object:  "object",
	String:  "string",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return names[t]
}

// FromName returns the type named name, as used by JSON Schema.
func FromName(name string) (Type, error) {
	for i, n := range names {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Of returns the type of a value decoded by encoding/json or built by the
// tree reader. Numbers written without a fraction or exponent are
// integers; float64 values are integers when they have no fractional part.
func Of(v any) (Type, error) {
	switch n := v.(type) {
	case nil:
		return Null, nil
	case bool:
		return Boolean, nil
	case string:
		return String, nil
	case []any:
		return Array, nil
	case map[string]any:
		return Object, nil
	case json.Number:
		if strings.ContainsAny(n.String(), ".eE") {
			return Number, nil
		}
		return Integer, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Integer, nil
	case float32:
		return floatType(float64(n)), nil
	case float64:
		return floatType(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownType, v)
	}
}

func floatType(f float64) Type {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return Number
	}
	return Integer
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
