package settings

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/settingsync/internal/conv"
)

// Kind is the value type of a setting
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	// KindList is an ordered list of strings
	KindList
	// KindSet is an unordered, de-duplicated set of strings kept sorted
	KindSet
	// KindObject is a JSON-like map
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Parse converts an environment variable value into the kind's Go value.
func (k Kind) Parse(text string) (any, error) {
	switch k {
	case KindString:
		return text, nil
	case KindBool:
		return ParseBool(text), nil
	case KindInt:
		return strconv.Atoi(strings.TrimSpace(text))
	case KindFloat:
		return strconv.ParseFloat(strings.TrimSpace(text), 64)
	case KindList:
		return SplitAndTrim(text, ","), nil
	case KindSet:
		return normalizeSet(SplitAndTrim(text, ",")), nil
	default:
		return nil, fmt.Errorf("%w: %v values cannot be parsed from text", ErrKindMismatch, k)
	}
}

// Decode converts the JSON form of a value into the kind's Go value.
func (k Kind) Decode(raw json.RawMessage) (any, error) {
	var err error
	var ret any
	switch k {
	case KindString:
		var v string
		err = json.Unmarshal(raw, &v)
		ret = v
	case KindBool:
		var v bool
		err = json.Unmarshal(raw, &v)
		ret = v
	case KindInt:
		ret, err = conv.Integer(raw)
	case KindFloat:
		var v float64
		err = json.Unmarshal(raw, &v)
		ret = v
	case KindList, KindSet:
		var v []string
		err = json.Unmarshal(raw, &v)
		if k == KindSet {
			v = normalizeSet(v)
		} else if v == nil {
			v = []string{}
		}
		ret = v
	case KindObject:
		var v map[string]any
		err = json.Unmarshal(raw, &v)
		ret = v
	default:
		err = fmt.Errorf("unsupported kind %v", k)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: expected %v: %v", ErrKindMismatch, k, err)
	}
	return ret, nil
}

// Coerce converts an arbitrary Go value into the kind's Go value.
func (k Kind) Coerce(value any) (any, error) {
	if value == nil {
		return k.zero(), nil
	}
	switch k {
	case KindString, KindBool, KindFloat, KindList, KindSet, KindObject:
		if _, isString := value.(string); isString != (k == KindString) {
			return nil, fmt.Errorf("%w: expected %v, got %T", ErrKindMismatch, k, value)
		}
		data, err := conv.Encode(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKindMismatch, err)
		}
		return k.Decode(data)
	case KindInt:
		var v int
		if err := conv.Convert(value, &v); err != nil {
			return nil, fmt.Errorf("%w: expected %v, got %T", ErrKindMismatch, k, value)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported kind %v", k)
}

func (k Kind) zero() any {
	switch k {
	case KindBool:
		return false
	case KindInt:
		return 0
	case KindFloat:
		return float64(0)
	case KindList, KindSet:
		return []string{}
	case KindObject:
		return map[string]any{}
	default:
		return ""
	}
}

// ParseBool reports whether text is one of true, 1 or yes (case-insensitive).
func ParseBool(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// SplitAndTrim splits text on sep, trims every token and drops empty ones.
func SplitAndTrim(text, sep string) []string {
	parts := strings.Split(text, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func normalizeSet(items []string) []string {
	seen := make(map[string]bool, len(items))
	ret := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		ret = append(ret, item)
	}
	sort.Strings(ret)
	return ret
}
