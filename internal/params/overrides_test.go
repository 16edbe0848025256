package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func TestApplyOverrides(t *testing.T) {
	shape := telemetryShape()

	got, err := ApplyOverrides(shape, map[string]string{
		"source_table": "clients_daily_scalar_aggregates_v2",
		"attributes":   "client_id, os ,channel",
		"header":       "-- custom",
	})
	require.NoError(t, err)

	assert.Equal(t, "clients_daily_scalar_aggregates_v2", got.SourceTable)
	assert.Equal(t, []string{"client_id", "os", "channel"}, got.Attributes)
	assert.Equal(t, "-- custom", got.Header)
	assert.Equal(t, shape.DestinationTable, got.DestinationTable)

	// the input shape is left untouched
	assert.Equal(t, "clients_daily_scalar_aggregates_v1", shape.SourceTable)
	assert.Len(t, shape.Attributes, 5)
}

func TestApplyOverrides_UnknownKey(t *testing.T) {
	_, err := ApplyOverrides(telemetryShape(), map[string]string{"sourcetable": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, glamgen.ErrInvalidParameters))
	assert.Contains(t, err.Error(), `unknown override key "sourcetable"`)
}

func TestApplyOverrides_EmptyListFailsAssembly(t *testing.T) {
	got, err := ApplyOverrides(telemetryShape(), map[string]string{"user_data_attributes": ""})
	require.NoError(t, err)

	_, err = Assemble(got)
	assert.True(t, errors.Is(err, glamgen.ErrInvalidParameters))
}

func TestOverrideKeys(t *testing.T) {
	keys := OverrideKeys()
	assert.Len(t, keys, 10)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "join_filter")
}
