package params

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// overrideFields maps override keys to the shape field they replace. List
// fields take a comma-separated value.
var overrideFields = map[string]func(*Shape, string){
	"header":                func(s *Shape, v string) { s.Header = v },
	"template":              func(s *Shape, v string) { s.Template = v },
	"dataset":               func(s *Shape, v string) { s.Dataset = v },
	"user_data_type":        func(s *Shape, v string) { s.UserDataType = v },
	"user_data_attributes":  func(s *Shape, v string) { s.UserDataAttributes = splitList(v) },
	"attributes":            func(s *Shape, v string) { s.Attributes = splitList(v) },
	"extract_select_clause": func(s *Shape, v string) { s.ExtractSelectClause = v },
	"join_filter":           func(s *Shape, v string) { s.JoinFilter = v },
	"source_table":          func(s *Shape, v string) { s.SourceTable = v },
	"destination_table":     func(s *Shape, v string) { s.DestinationTable = v },
}

// OverrideKeys returns the keys ApplyOverrides accepts, sorted.
func OverrideKeys() []string {
	keys := make([]string, 0, len(overrideFields))
	for k := range overrideFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyOverrides returns a copy of shape with the given fields replaced. The
// input shape is not modified.
func ApplyOverrides(shape Shape, overrides map[string]string) (Shape, error) {
	out := shape.Clone()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		set, ok := overrideFields[key]
		if !ok {
			return Shape{}, fmt.Errorf("%w: unknown override key %q (valid keys: %s)",
				glamgen.ErrInvalidParameters, key, strings.Join(OverrideKeys(), ", "))
		}
		set(&out, overrides[key])
	}
	return out, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
