package params

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
// Later pairs win over earlier ones with the same key.
//
// Example:
//
//	overrides, err := ParseKeyValuePairs([]string{"source_table=clients_daily_v2"})
//	// Returns: map[string]string{"source_table": "clients_daily_v2"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: override %q is not in key=value format (example: --set source_table=clients_daily_v2)", glamgen.ErrInvalidParameters, pair)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: override has empty key: %q", glamgen.ErrInvalidParameters, pair)
		}

		result[key] = value
	}

	return result, nil
}

// ParseOverrideFile reads overrides in .env format (KEY=VALUE lines, # comments,
// quoted values). Keys are lowercased so SOURCE_TABLE and source_table name the
// same field.
func ParseOverrideFile(r io.Reader) (map[string]string, error) {
	raw, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: override file: %v", glamgen.ErrInvalidParameters, err)
	}

	result := make(map[string]string, len(raw))
	for k, v := range raw {
		result[strings.ToLower(k)] = v
	}
	return result, nil
}
