package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const masked = "******"

// Attribute represents a setting with its display value and source
type Attribute struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Value  string `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

// Attributes returns every setting in table order, secret values masked
func (s *Store) Attributes() []Attribute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]Attribute, 0, len(s.fields))
	for _, field := range s.fields {
		value := formatValue(s.values[field.Name])
		if field.Secret && value != "" {
			value = masked
		}
		ret = append(ret, Attribute{
			Name:   field.Name,
			Kind:   field.Kind.String(),
			Value:  value,
			Source: s.sources[field.Name],
		})
	}
	return ret
}

// FormatText returns a table representation of attrs
func FormatText(attrs []Attribute) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-32s %-8s %-40s %s\n", "NAME", "KIND", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-32s %-8s %-40s %s\n", "----", "----", "-----", "------"))
	for _, attr := range attrs {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-32s %-8s %-40s %s\n", attr.Name, attr.Kind, value, attr.Source))
	}
	return sb.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return strings.Join(v, ",")
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
