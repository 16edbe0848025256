package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/internal/params"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	c, err := LoadCatalog(filesystem.NewMemoryFileSystem("/"), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"glean", "telemetry"}, c.Names())
	assert.Equal(t, "builtin:telemetry.yaml", c.Origin("telemetry"))

	s, err := c.Lookup("telemetry")
	require.NoError(t, err)
	assert.Equal(t, "telemetry_derived", s.Dataset)
	assert.Equal(t, "clients_daily_scalar_aggregates_v1", s.SourceTable)
	assert.Equal(t, "clients_scalar_aggregates_v1", s.DestinationTable)
	assert.Equal(t, []string{"metric", "metric_type", "key", "process"}, s.UserDataAttributes)
	assert.Equal(t, []string{"client_id", "os", "app_version", "app_build_id", "channel"}, s.Attributes)
	assert.Contains(t, s.ExtractSelectClause, "CAST(app_version AS INT64) as app_version")
	assert.Contains(t, s.JoinFilter, "app_version >= (latest_version - 2)")
}

func TestBuiltinShapesAssembleStrictly(t *testing.T) {
	c, err := LoadCatalog(filesystem.NewMemoryFileSystem("/"), "")
	require.NoError(t, err)

	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := c.Lookup(name)
			require.NoError(t, err)

			p, err := params.Assemble(s)
			require.NoError(t, err)
			assert.NoError(t, params.ValidateUserDataAttributes(p))
		})
	}
}

func TestLoadCatalog_FileOverridesBuiltin(t *testing.T) {
	fsys := filesystem.NewMemoryFileSystem("/project")
	fsys.AddFile("shapes.yaml", `shapes:
  - name: telemetry
    source_table: clients_daily_scalar_aggregates_v2
  - name: fenix
    description: Fenix nightly
`)

	c, err := LoadCatalog(fsys, "shapes.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"fenix", "glean", "telemetry"}, c.Names())
	assert.Equal(t, "shapes.yaml", c.Origin("fenix"))

	s, err := c.Lookup("telemetry")
	require.NoError(t, err)
	assert.Equal(t, "clients_daily_scalar_aggregates_v2", s.SourceTable)
	assert.Empty(t, s.Attributes)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filesystem.NewMemoryFileSystem("/"), "nope.yaml")
	assert.True(t, errors.Is(err, glamgen.ErrInvalidConfig))
}

func TestCatalog_LookupUnknown(t *testing.T) {
	c, err := LoadCatalog(filesystem.NewMemoryFileSystem("/"), "")
	require.NoError(t, err)

	_, err = c.Lookup("desktop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, glamgen.ErrInvalidParameters))
	assert.Contains(t, err.Error(), "available: glean, telemetry")
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	c, err := LoadCatalog(filesystem.NewMemoryFileSystem("/"), "")
	require.NoError(t, err)

	s, err := c.Lookup("telemetry")
	require.NoError(t, err)
	s.Attributes[0] = "mutated"

	again, err := c.Lookup("telemetry")
	require.NoError(t, err)
	assert.Equal(t, "client_id", again.Attributes[0])
}

func TestParseShapes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"empty document", "", "empty shapes file"},
		{"no shapes", "shapes: []\n", "no shapes defined"},
		{"unknown field", "shapes:\n  - name: a\n    source_tabel: x\n", "source_tabel"},
		{"unknown top-level key", "shape:\n  - name: a\n", "shape"},
		{"bad name", "shapes:\n  - name: Desktop\n", `invalid name "Desktop"`},
		{"missing name", "shapes:\n  - source_table: x\n", `invalid name ""`},
		{"duplicate", "shapes:\n  - name: a\n  - name: a\n", `duplicate shape "a"`},
		{"wrong type", "shapes:\n  - name: a\n    attributes: client_id\n", "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShapes([]byte(tt.data), "test.yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, glamgen.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.msg)
			assert.Contains(t, err.Error(), "test.yaml")
		})
	}
}

func TestMarshalShape(t *testing.T) {
	s := params.Shape{
		Name:               "mini",
		SourceTable:        "clients_daily_v1",
		UserDataAttributes: []string{"metric"},
		Attributes:         []string{"client_id", "os"},
	}

	data, err := MarshalShape(s)
	require.NoError(t, err)

	shapes, err := ParseShapes(data, "roundtrip")
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, s, shapes[0])
	assert.NotContains(t, string(data), "header")
}
