package settings

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind is the conversion target of a lookup.
type Kind int

const (
	// KindRaw returns the stored value unchanged.
	KindRaw Kind = iota
	// KindInt parses the value as an integer.
	KindInt
	// KindFloat returns the stored value unchanged; the float getters
	// accept only numeric values.
	KindFloat
	// KindBool applies truthiness: "false" is true, "" is false.
	KindBool
	// KindStringList passes lists through and splits strings on commas.
	KindStringList
	// KindDict returns the stored value unchanged.
	KindDict
	// KindNull always yields nil.
	KindNull
)

var allKinds = []Kind{KindRaw, KindInt, KindFloat, KindBool, KindStringList, KindDict, KindNull}

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "list"
	case KindDict:
		return "dict"
	case KindNull:
		return "null"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func convert(v any, kind Kind) (any, error) {
	switch kind {
	case KindInt:
		return toInt(v)
	case KindBool:
		return truthy(v), nil
	case KindStringList:
		return toStringList(v)
	case KindNull:
		return nil, nil
	default:
		return v, nil
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrConversion, t)
		}
		return int(f), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrConversion, t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %T to int", ErrConversion, v)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func toStringList(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case nil:
				out = append(out, "")
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out, nil
	case string:
		parts := strings.Split(t, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to list", ErrConversion, v)
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrConversion, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: cannot use %T as float", ErrConversion, v)
	}
}
